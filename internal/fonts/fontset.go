package fonts

import "errors"

// FontSet holds one resolved face per role for a batch run.
type FontSet struct {
	faces map[Role]Face
}

// Builtin returns a FontSet where every role uses the built-in face.
func Builtin() *FontSet {
	faces := make(map[Role]Face, len(roleOrder))
	for _, role := range roleOrder {
		faces[role] = builtinFace(role)
	}
	return &FontSet{faces: faces}
}

// Face returns the face for role. Roles missing from the set get the
// built-in face.
func (s *FontSet) Face(role Role) Face {
	if s != nil {
		if f, ok := s.faces[role]; ok {
			return f
		}
	}
	return builtinFace(role)
}

// Fallbacks lists, in role order, the roles that use the built-in face.
func (s *FontSet) Fallbacks() []Role {
	var roles []Role
	for _, role := range roleOrder {
		if s.Face(role).Fallback() {
			roles = append(roles, role)
		}
	}
	return roles
}

// Close releases the faces built from font files.
func (s *FontSet) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, f := range s.faces {
		if !f.Fallback() {
			errs = append(errs, f.Close())
		}
	}
	return errors.Join(errs...)
}
