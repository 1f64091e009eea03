package fonts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ttcMagic prefixes TrueType/OpenType collections.
var ttcMagic = []byte("ttcf")

// Face is a resolved font handle for one role.
type Face struct {
	font.Face
	Role   Role
	Source string // file the face was built from, empty for the built-in face
}

// Fallback reports whether the face is the built-in bitmap face.
func (f Face) Fallback() bool {
	return f.Source == ""
}

// builtinFace returns the built-in face for a role. It ignores the role's
// size: Face7x13 is the only size available.
func builtinFace(r Role) Face {
	return Face{Face: basicfont.Face7x13, Role: r}
}

// Resolver finds a loadable typeface for each role. Parsed font files are
// cached for the lifetime of the Resolver; it is safe for concurrent use.
type Resolver struct {
	goos      string
	system    bool
	dirs      []string
	files     map[Weight][]string
	mu        sync.Mutex
	parsed    map[string]*opentype.Font
	loadError map[string]error
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDirs adds directories searched before the platform bucket. Each
// directory is probed for the file names of every platform bucket.
func WithDirs(dirs ...string) Option {
	return func(r *Resolver) {
		for _, d := range dirs {
			if d != "" {
				r.dirs = append(r.dirs, d)
			}
		}
	}
}

// WithFiles adds explicit font files for a weight, searched first.
func WithFiles(w Weight, paths ...string) Option {
	return func(r *Resolver) {
		for _, p := range paths {
			if p != "" {
				r.files[w] = append(r.files[w], p)
			}
		}
	}
}

// WithPlatform overrides the platform bucket selection (default runtime.GOOS).
func WithPlatform(goos string) Option {
	return func(r *Resolver) {
		r.goos = goos
	}
}

// WithoutSystemFonts disables the platform bucket so only explicit files and
// directories are searched.
func WithoutSystemFonts() Option {
	return func(r *Resolver) {
		r.system = false
	}
}

// NewResolver creates a Resolver for the host platform.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		goos:      runtime.GOOS,
		system:    true,
		files:     make(map[Weight][]string),
		parsed:    make(map[string]*opentype.Font),
		loadError: make(map[string]error),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platform returns the name of the bucket this Resolver searches, or "none"
// when system fonts are disabled.
func (r *Resolver) Platform() string {
	if !r.system {
		return "none"
	}
	return PlatformBucket(r.goos).Name
}

// Candidates returns the ordered file paths tried for a weight.
func (r *Resolver) Candidates(w Weight) []string {
	var paths []string
	paths = append(paths, r.files[w]...)

	for _, name := range knownNames(w) {
		for _, dir := range r.dirs {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	if r.system {
		bucket := PlatformBucket(r.goos)
		for _, name := range bucket.Names(w) {
			for _, dir := range bucket.Dirs {
				paths = append(paths, filepath.Join(dir, name))
			}
		}
	}
	return paths
}

// Resolve returns a face for role built from the first candidate that
// parses, or the built-in face. Unknown roles resolve to the built-in face.
func (r *Resolver) Resolve(role Role) Face {
	if !role.Valid() {
		return builtinFace(role)
	}

	for _, path := range r.Candidates(role.Weight()) {
		f, err := r.load(path)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    role.Size(),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return Face{Face: face, Role: role, Source: path}
	}
	return builtinFace(role)
}

// FontSet resolves every role.
func (r *Resolver) FontSet() *FontSet {
	faces := make(map[Role]Face, len(roleOrder))
	for _, role := range roleOrder {
		faces[role] = r.Resolve(role)
	}
	return &FontSet{faces: faces}
}

// load reads and parses a font file once. TTC collections use their first
// font.
func (r *Resolver) load(path string) (*opentype.Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.parsed[path]; ok {
		return f, nil
	}
	if err, ok := r.loadError[path]; ok {
		return nil, err
	}

	f, err := parseFile(path)
	if err != nil {
		r.loadError[path] = err
		return nil, err
	}
	r.parsed[path] = f
	return f, nil
}

func parseFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- font paths come from the operator or fixed system folders
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(data, ttcMagic) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing collection %s: %w", path, err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("reading first font of %s: %w", path, err)
		}
		return f, nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}
