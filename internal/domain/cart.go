package domain

// CartLine is one entry in a session's cart. Title, price and image are
// copied from the listing at add time; later listing changes never affect
// existing lines. At most one line exists per (ID, Type) pair.
type CartLine struct {
	ID       int        `json:"id"`
	Title    string     `json:"title"`
	Price    int64      `json:"price"`
	Image    string     `json:"image"`
	Type     Collection `json:"type"`
	Quantity int        `json:"quantity"`
}

// CopyCart returns a value copy of the cart so callers never alias
// store-held state.
func CopyCart(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
