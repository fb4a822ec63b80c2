package engine

import (
	"fmt"
	"strings"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxground/voxground/pkg/mesh"
	"github.com/voxground/voxground/pkg/octree"
	"github.com/voxground/voxground/pkg/tool"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms sculpt Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: max-depth -> max_depth
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps an mgl32.Vec3 so it can be passed between builtins.
type sexpVec3 struct {
	vec mgl32.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec[0], v.vec[1], v.vec[2])
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpTool wraps a sculpting tool so it can be returned from tool
// constructors and consumed by place/remove.
type sexpTool struct {
	t    tool.Tool
	desc string
}

func (t *sexpTool) SexpString(ps *zygo.PrintState) string {
	return t.desc
}
func (t *sexpTool) Type() *zygo.RegisteredType { return nil }

// sexpTerrain wraps the session's density field.
type sexpTerrain struct {
	field octree.Field
}

func (t *sexpTerrain) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(terrain :scale %g)", t.field.Scale())
}
func (t *sexpTerrain) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value — treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat32 extracts a float32 from a Sexp (SexpInt or SexpFloat).
func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a Sexp.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if v, ok := s.(*zygo.SexpBool); ok {
		return v.Val, nil
	}
	return false, fmt.Errorf("expected bool, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_vertex) and plain strings ("vertex").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toVec3 extracts a Vec3 from a sexpVec3.
func toVec3(s zygo.Sexp) (mgl32.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return mgl32.Vec3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toTool extracts a sculpting tool from a sexpTool.
func toTool(s zygo.Sexp) (tool.Tool, error) {
	if t, ok := s.(*sexpTool); ok {
		return t.t, nil
	}
	return nil, fmt.Errorf("expected tool, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Evaluation session
// ---------------------------------------------------------------------------

// defaultSculptDepth is the refinement limit used by place/remove when a
// script does not pass :max-depth.
const defaultSculptDepth = 6

// session accumulates the state a sculpt script builds up: the density
// field being sculpted and the most recently extracted mesh.
type session struct {
	field octree.Field
	mesh  *mesh.Mesh
}

func newSession() *session {
	return &session{}
}

// ensureField returns the session's field, creating a unit-scale Tree
// when the script never called terrain explicitly.
func (s *session) ensureField() octree.Field {
	if s.field == nil {
		s.field = octree.NewTree(1)
	}
	return s.field
}

// parallelField is implemented by field strategies that offer parallel
// variants of sculpting and extraction.
type parallelField interface {
	ApplyToolParallel(t tool.Tool, action tool.Action, maxDepth int)
	GenerateMeshParallel(maxDepth int) *mesh.Mesh
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all sculpt DSL builtins into a zygomys
// environment. The builtins operate on the provided session, sculpting its
// density field during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *session) {

	// -----------------------------------------------------------------------
	// (terrain :scale 100 :strategy :tree)
	//
	// Strategies: :tree (pointer octree, default) or :map (hash octree).
	// -----------------------------------------------------------------------
	env.AddFunction("terrain", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		scale := float32(1)
		if v, ok := pa.kw["scale"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("terrain: scale: %w", err)
			}
			if f <= 0 {
				return zygo.SexpNull, fmt.Errorf("terrain: scale must be positive, got %g", f)
			}
			scale = f
		}

		strategy := "tree"
		if v, ok := pa.kw["strategy"]; ok {
			str, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("terrain: strategy: %w", err)
			}
			strategy = str
		}

		switch strategy {
		case "tree":
			s.field = octree.NewTree(scale)
		case "map":
			s.field = octree.NewOctantMap(scale)
		default:
			return zygo.SexpNull, fmt.Errorf("terrain: unknown strategy %q, expected tree or map", strategy)
		}

		return &sexpTerrain{field: s.field}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}

		x, err := toFloat32(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat32(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat32(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}

		return &sexpVec3{vec: mgl32.Vec3{x, y, z}}, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :at (vec3 0.5 0.5 0.5) :radius 0.25)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		origin := mgl32.Vec3{}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sphere: at: %w", err)
			}
			origin = vec
		}

		radius := float32(1)
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sphere: radius: %w", err)
			}
			radius = f
		}
		if radius <= 0 {
			return zygo.SexpNull, fmt.Errorf("sphere: radius must be positive, got %g", radius)
		}

		return &sexpTool{
			t:    tool.NewSphere(origin, radius),
			desc: fmt.Sprintf("(sphere :at (vec3 %g %g %g) :radius %g)", origin[0], origin[1], origin[2], radius),
		}, nil
	})

	// -----------------------------------------------------------------------
	// (box :at (vec3 0.5 0.5 0.5) :size (vec3 0.3 0.2 0.1) :round 0.02)
	//
	// Backed by an sdfx box solid centered on :at.
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		center := mgl32.Vec3{}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: at: %w", err)
			}
			center = vec
		}

		size := mgl32.Vec3{1, 1, 1}
		if v, ok := pa.kw["size"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: size: %w", err)
			}
			size = vec
		}
		if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
			return zygo.SexpNull, fmt.Errorf("box: size must be positive on every axis")
		}

		round := float32(0)
		if v, ok := pa.kw["round"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("box: round: %w", err)
			}
			round = f
		}

		solid, err := sdf.Box3D(v3.Vec{X: float64(size[0]), Y: float64(size[1]), Z: float64(size[2])}, float64(round))
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("box: %w", err)
		}
		solid = sdf.Transform3D(solid, sdf.Translate3d(v3.Vec{
			X: float64(center[0]), Y: float64(center[1]), Z: float64(center[2]),
		}))

		return &sexpTool{
			t:    tool.NewSDF(solid, false),
			desc: fmt.Sprintf("(box :at (vec3 %g %g %g))", center[0], center[1], center[2]),
		}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :at (vec3 ...) :radius 0.2 :height 0.5)
	//
	// Backed by an sdfx cylinder solid, axis along Z, centered on :at.
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		center := mgl32.Vec3{}
		if v, ok := pa.kw["at"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: at: %w", err)
			}
			center = vec
		}

		radius := float32(1)
		if v, ok := pa.kw["radius"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: radius: %w", err)
			}
			radius = f
		}
		height := float32(1)
		if v, ok := pa.kw["height"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cylinder: height: %w", err)
			}
			height = f
		}
		if radius <= 0 || height <= 0 {
			return zygo.SexpNull, fmt.Errorf("cylinder: radius and height must be positive")
		}

		solid, err := sdf.Cylinder3D(float64(height), float64(radius), 0)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		solid = sdf.Transform3D(solid, sdf.Translate3d(v3.Vec{
			X: float64(center[0]), Y: float64(center[1]), Z: float64(center[2]),
		}))

		return &sexpTool{
			t:    tool.NewSDF(solid, false),
			desc: fmt.Sprintf("(cylinder :at (vec3 %g %g %g) :radius %g)", center[0], center[1], center[2], radius),
		}, nil
	})

	// -----------------------------------------------------------------------
	// (transform tool :translate (vec3 ...) :rotate (vec3 x y z) :scale 2)
	//
	// Rotation angles are degrees, applied X then Y then Z.
	// -----------------------------------------------------------------------
	env.AddFunction("transform", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) < 1 {
			return zygo.SexpNull, fmt.Errorf("transform requires a tool as first argument")
		}
		inner, err := toTool(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("transform: tool: %w", err)
		}

		translate := mgl32.Vec3{}
		if v, ok := pa.kw["translate"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("transform: translate: %w", err)
			}
			translate = vec
		}
		rotate := mgl32.Vec3{}
		if v, ok := pa.kw["rotate"]; ok {
			vec, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("transform: rotate: %w", err)
			}
			rotate = vec
		}
		scale := float32(1)
		if v, ok := pa.kw["scale"]; ok {
			f, err := toFloat32(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("transform: scale: %w", err)
			}
			scale = f
		}
		if scale <= 0 {
			return zygo.SexpNull, fmt.Errorf("transform: scale must be positive, got %g", scale)
		}

		return &sexpTool{
			t:    tool.NewTransformed(inner, translate, rotate, scale),
			desc: fmt.Sprintf("(transform %s)", pa.positional[0].SexpString(nil)),
		}, nil
	})

	// -----------------------------------------------------------------------
	// (place tool :max-depth 8 :parallel true)
	// (remove tool :max-depth 8 :parallel true)
	// -----------------------------------------------------------------------
	sculpt := func(action tool.Action) zygo.ZlispUserFunction {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)

			if len(pa.positional) < 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires a tool as first argument", name)
			}
			t, err := toTool(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: tool: %w", name, err)
			}

			maxDepth := defaultSculptDepth
			if v, ok := pa.kw["max-depth"]; ok {
				d, err := toInt(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: max-depth: %w", name, err)
				}
				if d < 0 {
					return zygo.SexpNull, fmt.Errorf("%s: max-depth must be non-negative, got %d", name, d)
				}
				maxDepth = d
			}

			parallel := false
			if v, ok := pa.kw["parallel"]; ok {
				p, err := toBool(v)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: parallel: %w", name, err)
				}
				parallel = p
			}

			field := s.ensureField()
			if pf, ok := field.(parallelField); ok && parallel {
				pf.ApplyToolParallel(t, action, maxDepth)
			} else {
				field.ApplyTool(t, action, maxDepth)
			}
			return zygo.SexpNull, nil
		}
	}
	env.AddFunction("place", sculpt(tool.Place))
	env.AddFunction("remove", sculpt(tool.Remove))

	// -----------------------------------------------------------------------
	// (mesh :max-depth 8 :index true :normals :vertex :parallel true)
	//
	// Normals: :vertex, :face, or :none (default). :vertex implies indexing.
	// -----------------------------------------------------------------------
	env.AddFunction("mesh", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		maxDepth := defaultSculptDepth
		if v, ok := pa.kw["max-depth"]; ok {
			d, err := toInt(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mesh: max-depth: %w", err)
			}
			if d < 0 {
				return zygo.SexpNull, fmt.Errorf("mesh: max-depth must be non-negative, got %d", d)
			}
			maxDepth = d
		}

		parallel := false
		if v, ok := pa.kw["parallel"]; ok {
			p, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mesh: parallel: %w", err)
			}
			parallel = p
		}

		field := s.ensureField()
		var m *mesh.Mesh
		if pf, ok := field.(parallelField); ok && parallel {
			m = pf.GenerateMeshParallel(maxDepth)
		} else {
			m = field.GenerateMesh(maxDepth)
		}

		if v, ok := pa.kw["index"]; ok {
			idx, err := toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mesh: index: %w", err)
			}
			if idx {
				m.Index()
			}
		}

		if v, ok := pa.kw["normals"]; ok {
			kind, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("mesh: normals: %w", err)
			}
			switch kind {
			case "vertex":
				m.GenerateVertexNormals()
			case "face":
				m.GenerateFaceNormals()
			case "none":
			default:
				return zygo.SexpNull, fmt.Errorf("mesh: unknown normals kind %q, expected vertex, face, or none", kind)
			}
		}

		s.mesh = m
		return zygo.SexpNull, nil
	})
}
