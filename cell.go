package tablekit

// Role identifies a display attribute stored alongside a cell's value.
// Roles mirror the item-data roles of the host toolkits; frontends translate
// them into whatever their renderer understands.
type Role int

const (
	// RoleDisplay is the string value itself. It is not stored in the
	// attribute bag; Cell.Value holds it.
	RoleDisplay Role = iota
	// RoleBackground is a background color in "#rrggbb" form.
	RoleBackground
	// RoleForeground is a text color in "#rrggbb" form.
	RoleForeground
	// RoleToolTip is a hover tooltip string.
	RoleToolTip
)

// Cell is a single grid cell: a string value plus a role-keyed attribute bag.
// The attribute map is nil until the first attribute is set.
type Cell struct {
	Value string
	attrs map[Role]string
}

// Attr returns the attribute stored under role, and whether it was set.
func (c *Cell) Attr(role Role) (string, bool) {
	if c.attrs == nil {
		return "", false
	}
	v, ok := c.attrs[role]
	return v, ok
}

// SetAttr stores an attribute under role. RoleDisplay writes the value field.
func (c *Cell) SetAttr(role Role, value string) {
	if role == RoleDisplay {
		c.Value = value
		return
	}
	if c.attrs == nil {
		c.attrs = make(map[Role]string)
	}
	c.attrs[role] = value
}

// ClearAttr removes an attribute. Clearing RoleDisplay empties the value.
func (c *Cell) ClearAttr(role Role) {
	if role == RoleDisplay {
		c.Value = ""
		return
	}
	delete(c.attrs, role)
}

// CellFlags describes what a frontend may let the user do with a cell.
type CellFlags int

const (
	// FlagNone: invalid index, no capabilities.
	FlagNone CellFlags = 0
	// FlagSelectable: the cell may be selected.
	FlagSelectable CellFlags = 1 << iota
	// FlagEditable: the cell accepts in-place edits.
	FlagEditable
	// FlagEnabled: the cell participates in interaction at all.
	FlagEnabled
	// FlagDefault: no explicit policy; the frontend applies its toolkit default.
	FlagDefault
)

// Has reports whether all bits of mask are set.
func (f CellFlags) Has(mask CellFlags) bool {
	return f&mask == mask
}
