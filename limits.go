package mpack

// Wire-format value limits.
const (
	PosFixIntMax = 127
	NegFixIntMin = -32

	FixStrMax = 31

	FixArrayMax = 15
	Array16Max  = 65535
	Array32Max  = 4294967295

	FixMapMax = 15
	Map16Max  = 65535
	Map32Max  = 4294967295

	BinMax    = 4294967295
	StringMax = 4294967295
)
