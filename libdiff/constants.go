package libdiff

// Markers delimiting changes in uncolored output.
const (
	DeleteOpen  = "[-"
	DeleteClose = "-]"
	InsertOpen  = "{+"
	InsertClose = "+}"
)
