package registry

import (
	"errors"
	"fmt"

	"github.com/funvibe/revive/internal/instance"
)

var (
	ErrModuleNotFound      = errors.New("module not found")
	ErrDeclarationNotFound = errors.New("declaration not found")
	ErrNotEnum             = errors.New("declaration is not an enum")
	ErrConstructionFailed  = errors.New("construction failed")
	ErrModuleExists        = errors.New("module already registered")
	ErrAnonymousModule     = errors.New("module has no name")
	ErrDeclarationExists   = errors.New("declaration already registered")
)

// InvokeFunc builds an instance from already-revived arguments. Supplied by
// the host when a declaration maps to a real Go value; when nil the
// constructor produces a generic instance.Data.
type InvokeFunc func(positional []instance.Object, named map[string]instance.Object) (instance.Object, error)

// Constructor describes one named constructor of a declaration.
type Constructor struct {
	Name       string   // "" for the default (unnamed) constructor
	Positional []string // declared positional parameter names; arity is their count
	Named      []string // declared named parameter names
	Invoke     InvokeFunc
}

// TypeDescriptor is a constructible registry entry: either an enum with an
// ordered member list, or a declaration with named constructors.
type TypeDescriptor struct {
	Module  string
	Name    string
	IsEnum  bool
	members []instance.Object
	ctors   map[string]*Constructor
}

// NewType returns a non-enum descriptor with no constructors yet.
func NewType(module, name string) *TypeDescriptor {
	return &TypeDescriptor{
		Module: module,
		Name:   name,
		ctors:  make(map[string]*Constructor),
	}
}

// NewEnum returns an enum descriptor whose members are generic singletons
// named after memberNames, in declaration order.
func NewEnum(module, name string, memberNames ...string) *TypeDescriptor {
	members := make([]instance.Object, len(memberNames))
	for i, member := range memberNames {
		members[i] = &instance.Data{TypeName: name, Constructor: member}
	}
	return &TypeDescriptor{
		Module:  module,
		Name:    name,
		IsEnum:  true,
		members: members,
	}
}

// NewEnumWithMembers returns an enum descriptor over host-built member
// instances, in the given order.
func NewEnumWithMembers(module, name string, members []instance.Object) *TypeDescriptor {
	return &TypeDescriptor{
		Module:  module,
		Name:    name,
		IsEnum:  true,
		members: members,
	}
}

// AddConstructor registers a constructor on a non-enum descriptor.
// Registering the same name twice keeps the last definition.
func (d *TypeDescriptor) AddConstructor(c *Constructor) *TypeDescriptor {
	if d.ctors == nil {
		d.ctors = make(map[string]*Constructor)
	}
	d.ctors[c.Name] = c
	return d
}

// EnumMembers returns the ordered member instances of an enum descriptor.
func (d *TypeDescriptor) EnumMembers() ([]instance.Object, error) {
	if !d.IsEnum {
		return nil, fmt.Errorf("%w: %s.%s", ErrNotEnum, d.Module, d.Name)
	}
	return d.members, nil
}

// Construct invokes the named constructor with the supplied arguments.
// The constructor must exist, the positional arity must match exactly and
// every named argument must be declared; any mismatch fails with
// ErrConstructionFailed.
func (d *TypeDescriptor) Construct(name string, positional []instance.Object, named map[string]instance.Object) (instance.Object, error) {
	ctor, ok := d.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no constructor %q", ErrConstructionFailed, d.Name, name)
	}
	if len(positional) != len(ctor.Positional) {
		return nil, fmt.Errorf("%w: %s.%s wants %d positional arguments, got %d",
			ErrConstructionFailed, d.Name, name, len(ctor.Positional), len(positional))
	}
	for argName := range named {
		if !contains(ctor.Named, argName) {
			return nil, fmt.Errorf("%w: %s.%s has no named parameter %q",
				ErrConstructionFailed, d.Name, name, argName)
		}
	}
	if ctor.Invoke != nil {
		obj, err := ctor.Invoke(positional, named)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrConstructionFailed, d.Name, name, err)
		}
		return obj, nil
	}
	return &instance.Data{
		TypeName:    d.Name,
		Constructor: name,
		Fields:      positional,
		Named:       named,
	}, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Module is one lookup bucket of the registry: every declaration reachable
// under a package root, keyed by declaration name.
type Module struct {
	Name  string
	decls map[string]*TypeDescriptor
}

func NewModule(name string) *Module {
	return &Module{
		Name:  name,
		decls: make(map[string]*TypeDescriptor),
	}
}

// Declare adds a descriptor to the module.
func (m *Module) Declare(d *TypeDescriptor) error {
	if _, exists := m.decls[d.Name]; exists {
		return fmt.Errorf("%w: %s.%s", ErrDeclarationExists, m.Name, d.Name)
	}
	m.decls[d.Name] = d
	return nil
}

// Declaration resolves a declaration by name.
func (m *Module) Declaration(name string) (*TypeDescriptor, error) {
	d, ok := m.decls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrDeclarationNotFound, m.Name, name)
	}
	return d, nil
}

// Registry is the process-wide table from first-path-segment module keys to
// loaded modules. It is populated once by the host before any revival and
// read-only afterwards, which makes it safe to share across concurrent
// revival calls without locking.
//
// Keying on the first path segment only is a deliberate precision
// trade-off inherited from the source design: all declarations reachable
// under one package root share a single bucket. Two distinct modules with
// the same first segment cannot coexist; Register rejects the second one
// so the ambiguity surfaces at population time instead of at lookup time.
type Registry struct {
	modules map[string]*Module
}

func New() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module under its name.
func (r *Registry) Register(m *Module) error {
	if m.Name == "" {
		return ErrAnonymousModule
	}
	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("%w: %s", ErrModuleExists, m.Name)
	}
	r.modules[m.Name] = m
	return nil
}

// Resolve looks a module up by the first path segment of a source
// location. The empty segment (anonymous location) never resolves.
func (r *Registry) Resolve(firstSegment string) (*Module, error) {
	if firstSegment == "" {
		return nil, fmt.Errorf("%w: anonymous source location", ErrModuleNotFound)
	}
	m, ok := r.modules[firstSegment]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, firstSegment)
	}
	return m, nil
}
