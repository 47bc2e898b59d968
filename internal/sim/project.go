package sim

import "github.com/progracyd/debugblocker/internal/token"

// ProjectFields returns a new token table and field-id table containing
// only the entries whose field id is in fields, preserving per-record
// position order. Per-record rows may come out empty. Grounded on
// GenerateRecomLists.cpp's copy_table_and_remove_fields.
func ProjectFields(fields map[int]struct{}, table token.Table, fieldIDs token.FieldTable) (token.Table, token.FieldTable) {
	newTable := make(token.Table, len(table))
	newFields := make(token.FieldTable, len(table))

	for i := range table {
		row := make([]int, 0, len(table[i]))
		frow := make([]int, 0, len(fieldIDs[i]))
		for j, tok := range table[i] {
			f := fieldIDs[i][j]
			if _, ok := fields[f]; ok {
				row = append(row, tok)
				frow = append(frow, f)
			}
		}
		newTable[i] = row
		newFields[i] = frow
	}

	return newTable, newFields
}

// fieldSet turns an ordered field-id slice (a configuration) into a
// lookup set for ProjectFields.
func fieldSet(fields []int) map[int]struct{} {
	set := make(map[int]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
