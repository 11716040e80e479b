package targets

// List is the root of a parsed target list.
type List struct {
	Items []*Item `parser:"( @@ ( Comma? @@ )* )?"`
}

// Item is a single target or an inclusive range of targets.
type Item struct {
	From  string `parser:"@Int"`
	Range *Range `parser:"@@?"`
}

// Range is the optional ".. to [: step]" tail of an Item.
type Range struct {
	To   string  `parser:"DotDot @Int"`
	Step *string `parser:"( Colon @Int )?"`
}
