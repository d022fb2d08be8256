package anchor

// Positioned is implemented by records with a genomic position.
type Positioned interface {
	Pos() int
}

// Bin rounds the record's position down to a multiple of binSize.
func Bin(p Positioned, binSize int) int {
	return BinPosition(p.Pos(), binSize)
}

// BinPosition rounds pos down to a multiple of binSize.
func BinPosition(pos, binSize int) int {
	return pos - pos%binSize
}
