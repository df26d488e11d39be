package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color code.
type Color uint8

// Palette used by the playfield, the piece catalog and the HUD.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray     // grid dots, hints
	ColorDarkGray // frame
	ColorRed      // GAME OVER banner

	// Piece colors, one per catalog kind.
	ColorPieceBlue
	ColorPieceGreen
	ColorPieceYellow
	ColorPieceOrange
	ColorPieceRed
)

// String returns a short name for the color, used in debug dumps.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "darkgray"
	case ColorRed:
		return "red"
	case ColorPieceBlue:
		return "blue"
	case ColorPieceGreen:
		return "green"
	case ColorPieceYellow:
		return "yellow"
	case ColorPieceOrange:
		return "orange"
	case ColorPieceRed:
		return "piece-red"
	default:
		return "unknown"
	}
}
