package toml

import "github.com/LainAmongYou/celes/pkgs/value"

// subtableValue returns the value stored under table in root, or the
// Invalid sentinel when root is nil or has no such key; callers check
// that the result is a table before the second hop. The original C
// equivalent (toml_get_subtable_value_inline) dereferenced the first
// lookup's result unconditionally and crashed on a missing table; this
// returns the zero value instead, same as every other miss in this
// package.
func subtableValue(root *value.Table, table string) value.Value {
	if root == nil {
		return value.Invalid
	}
	return root.GetValue(table)
}

// HasUserValue reports whether root has a table named `table` that in
// turn has a key named `key`.
func HasUserValue(root *value.Table, table, key string) bool {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return false
	}
	return sub.Has(key)
}

// GetString returns root[table][key] as a string, or "" if any hop in
// that path is missing or of another kind.
func GetString(root *value.Table, table, key string) string {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return ""
	}
	return sub.GetString(key)
}

// GetInt returns root[table][key] as an integer, or 0 if any hop in
// that path is missing or of another kind.
func GetInt(root *value.Table, table, key string) int64 {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return 0
	}
	return sub.GetInt(key)
}

// GetReal returns root[table][key] as a float, or 0 if any hop in that
// path is missing or of another kind.
func GetReal(root *value.Table, table, key string) float64 {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return 0
	}
	return sub.GetReal(key)
}

// GetBool returns root[table][key] as a boolean, or false if any hop
// in that path is missing or of another kind.
func GetBool(root *value.Table, table, key string) bool {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return false
	}
	return sub.GetBool(key)
}

// GetTable returns root[table][key] as a table, or nil if any hop in
// that path is missing or of another kind.
func GetTable(root *value.Table, table, key string) *value.Table {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return nil
	}
	return sub.GetTable(key)
}

// GetArray returns root[table][key] as an array, or nil if any hop in
// that path is missing or of another kind.
func GetArray(root *value.Table, table, key string) *value.Array {
	sub := subtableValue(root, table).GetTable()
	if sub == nil {
		return nil
	}
	return sub.GetArray(key)
}
