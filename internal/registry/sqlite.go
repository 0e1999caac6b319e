package registry

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadSQLite populates a Registry from an analyzer-produced SQLite
// metadata file. The expected schema:
//
//	modules(id, name)
//	declarations(id, module_id, name, is_enum)
//	enum_members(declaration_id, position, name)
//	constructors(id, declaration_id, name)
//	constructor_params(constructor_id, position, name, is_named)
//
// Declarations loaded this way carry no host invoke functions: their
// constructors validate arity and names against the recorded parameters
// and produce generic instance.Data values. Loading happens entirely
// before revival starts, per the registry's population contract.
func LoadSQLite(path string) (*Registry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open metadata %s: %w", path, err)
	}
	defer db.Close()

	reg := New()

	modules, err := loadModules(db)
	if err != nil {
		return nil, err
	}

	for id, mod := range modules {
		if err := loadDeclarations(db, id, mod); err != nil {
			return nil, err
		}
		if err := reg.Register(mod); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func loadModules(db *sql.DB) (map[int64]*Module, error) {
	rows, err := db.Query(`SELECT id, name FROM modules`)
	if err != nil {
		return nil, fmt.Errorf("read modules: %w", err)
	}
	defer rows.Close()

	modules := make(map[int64]*Module)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("read modules: %w", err)
		}
		modules[id] = NewModule(name)
	}
	return modules, rows.Err()
}

func loadDeclarations(db *sql.DB, moduleID int64, mod *Module) error {
	rows, err := db.Query(
		`SELECT id, name, is_enum FROM declarations WHERE module_id = ? ORDER BY id`,
		moduleID)
	if err != nil {
		return fmt.Errorf("read declarations of %s: %w", mod.Name, err)
	}
	defer rows.Close()

	type declRow struct {
		id     int64
		name   string
		isEnum bool
	}
	var decls []declRow
	for rows.Next() {
		var d declRow
		if err := rows.Scan(&d.id, &d.name, &d.isEnum); err != nil {
			return fmt.Errorf("read declarations of %s: %w", mod.Name, err)
		}
		decls = append(decls, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, d := range decls {
		var desc *TypeDescriptor
		if d.isEnum {
			members, err := loadEnumMembers(db, d.id)
			if err != nil {
				return fmt.Errorf("read enum %s.%s: %w", mod.Name, d.name, err)
			}
			desc = NewEnum(mod.Name, d.name, members...)
		} else {
			desc = NewType(mod.Name, d.name)
			if err := loadConstructors(db, d.id, desc); err != nil {
				return fmt.Errorf("read constructors of %s.%s: %w", mod.Name, d.name, err)
			}
		}
		if err := mod.Declare(desc); err != nil {
			return err
		}
	}
	return nil
}

func loadEnumMembers(db *sql.DB, declID int64) ([]string, error) {
	rows, err := db.Query(
		`SELECT name FROM enum_members WHERE declaration_id = ? ORDER BY position`,
		declID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		members = append(members, name)
	}
	return members, rows.Err()
}

func loadConstructors(db *sql.DB, declID int64, desc *TypeDescriptor) error {
	rows, err := db.Query(
		`SELECT id, name FROM constructors WHERE declaration_id = ? ORDER BY id`,
		declID)
	if err != nil {
		return err
	}
	defer rows.Close()

	type ctorRow struct {
		id   int64
		name string
	}
	var ctors []ctorRow
	for rows.Next() {
		var c ctorRow
		if err := rows.Scan(&c.id, &c.name); err != nil {
			return err
		}
		ctors = append(ctors, c)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, c := range ctors {
		positional, named, err := loadParams(db, c.id)
		if err != nil {
			return err
		}
		desc.AddConstructor(&Constructor{
			Name:       c.name,
			Positional: positional,
			Named:      named,
		})
	}
	return nil
}

func loadParams(db *sql.DB, ctorID int64) (positional, named []string, err error) {
	rows, err := db.Query(
		`SELECT name, is_named FROM constructor_params WHERE constructor_id = ? ORDER BY position`,
		ctorID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var isNamed bool
		if err := rows.Scan(&name, &isNamed); err != nil {
			return nil, nil, err
		}
		if isNamed {
			named = append(named, name)
		} else {
			positional = append(positional, name)
		}
	}
	return positional, named, rows.Err()
}
