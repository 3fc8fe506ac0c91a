package common

// Base resolution the game renders at; scenes are authored against it.
const (
	BaseWidth  = 1024
	BaseHeight = 768
)
