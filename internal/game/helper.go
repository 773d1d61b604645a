package game

// ValidIndex reports whether index addresses a cell on the board.
func ValidIndex(index int) bool {
	return index >= 0 && index < CellCount
}

// IndexOf converts a row/column pair to a flat index, or -1 when off the board.
func IndexOf(row, col int) int {
	if row < BorderMin || row > BorderMax || col < BorderMin || col > BorderMax {
		return -1
	}
	return row*Size + col
}

// BoardAsRows converts the board to a slice of rows for clients.
func BoardAsRows(board Board) [][]PlayerMark {
	rows := make([][]PlayerMark, Size)
	for r := range rows {
		rows[r] = make([]PlayerMark, Size)
		copy(rows[r], board[r*Size:(r+1)*Size])
	}
	return rows
}
