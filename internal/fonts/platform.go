package fonts

import (
	"os"
	"path/filepath"
)

// Bucket is the static list of system font locations for one OS family.
type Bucket struct {
	Name    string
	Dirs    []string
	Regular []string // file names, preferred first
	Bold    []string
}

// Names returns the bucket's file names for a weight.
func (b Bucket) Names(w Weight) []string {
	if w == Bold {
		return b.Bold
	}
	return b.Regular
}

// PlatformBucket returns the candidate bucket for goos. Anything that is not
// windows or darwin gets the linux-style bucket of metric-compatible
// substitutes.
func PlatformBucket(goos string) Bucket {
	home, _ := os.UserHomeDir()

	switch goos {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return Bucket{
			Name:    "windows",
			Dirs:    dirs,
			Regular: []string{"arial.ttf"},
			Bold:    []string{"arialbd.ttf"},
		}

	case "darwin":
		dirs := []string{
			"/Library/Fonts",
			"/System/Library/Fonts/Supplemental",
			"/System/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return Bucket{
			Name:    "darwin",
			Dirs:    dirs,
			Regular: []string{"Arial.ttf"},
			Bold:    []string{"Arial Bold.ttf"},
		}

	default:
		dirs := []string{
			"/usr/share/fonts/truetype/liberation",
			"/usr/share/fonts/truetype/liberation2",
			"/usr/share/fonts/liberation-sans",
			"/usr/share/fonts/liberation",
			"/usr/share/fonts/truetype/croscore",
			"/usr/share/fonts/truetype/dejavu",
			"/usr/share/fonts/dejavu-sans-fonts",
			"/usr/share/fonts/dejavu",
			"/usr/share/fonts/truetype/freefont",
			"/usr/share/fonts/gnu-free",
			"/usr/share/fonts/TTF",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return Bucket{
			Name: "linux",
			Dirs: dirs,
			Regular: []string{
				"LiberationSans-Regular.ttf",
				"Arimo-Regular.ttf",
				"DejaVuSans.ttf",
				"FreeSans.ttf",
				"FreeSans.otf",
			},
			Bold: []string{
				"LiberationSans-Bold.ttf",
				"Arimo-Bold.ttf",
				"DejaVuSans-Bold.ttf",
				"FreeSansBold.ttf",
				"FreeSansBold.otf",
			},
		}
	}
}

// knownNames lists every file name of every bucket for a weight, in bucket
// order, without duplicates. Operator directories are searched for all of
// them since a folder copied from another machine keeps that OS's names.
func knownNames(w Weight) []string {
	seen := make(map[string]bool)
	var names []string
	for _, goos := range []string{"windows", "darwin", "linux"} {
		for _, n := range PlatformBucket(goos).Names(w) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}
