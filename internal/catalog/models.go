package catalog

// BookFields holds the user-editable fields of a catalog record. The
// identifier is allocated by the store on insert.
type BookFields struct {
	ISBN      string
	Title     string
	Author    string
	PageCount string
}

// Book is one canonical, shelf-independent catalog record.
type Book struct {
	ID   int64
	Hash string
	BookFields
}

// ShelfSummary pairs a shelf name with its membership count.
type ShelfSummary struct {
	Name  string
	Books int
}

// Membership records that a book sits on a shelf. It carries its own
// identifier, independent of the book's, and anchors per-shelf attribute
// values. The same book may appear on a shelf more than once; each
// occurrence is a distinct membership.
type Membership struct {
	ID        int64
	Hash      string
	ShelfID   int64
	ShelfName string
	Book      Book
}

// Attribute is one named extra field a shelf's memberships may carry.
type Attribute struct {
	ID      int64
	ShelfID int64
	Name    string
}

// AttributeValue is an attribute of a membership's shelf together with the
// membership's current value. Set distinguishes a stored empty string from
// no stored row at all.
type AttributeValue struct {
	Name  string
	Value string
	Set   bool
}
