package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Palette used by the arena renderer.
const (
	ColorDefault      Color = iota
	ColorRed                // Player hit flash, low health
	ColorGreen              // Basic monsters, healthy HUD
	ColorYellow             // Fast monsters, wounded HUD
	ColorMagenta            // Tank monsters
	ColorBrightRed          // Monsters in knockback
	ColorBrightGreen        // Health bonuses
	ColorBrightYellow       // Score
	ColorBrightWhite        // Player
	ColorGray               // Secondary HUD text
)
