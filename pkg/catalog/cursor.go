package catalog

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Direction string

const (
	Forward  Direction = "Forward"
	Backward Direction = "Backward"
)

// Cursor marks a position in a sorted listing. Forward cursors point at the
// first row of the next page, backward cursors at the first row of the
// current one.
type Cursor struct {
	Offset    int       `json:"offset"`
	Direction Direction `json:"direction"`
}

func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.StdEncoding.EncodeToString(raw)
}

func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, fmt.Errorf("decode cursor: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, fmt.Errorf("decode cursor: %w", err)
	}
	if c.Offset < 0 || (c.Direction != Forward && c.Direction != Backward) {
		return Cursor{}, fmt.Errorf("decode cursor: invalid position")
	}
	return c, nil
}

func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Window resolves a cursor into the offset and row count to fetch. A missing
// or unreadable cursor starts at the beginning.
func Window(cursor string, limit int) (offset, size int) {
	limit = ClampLimit(limit)
	if cursor == "" {
		return 0, limit
	}
	c, err := DecodeCursor(cursor)
	if err != nil {
		return 0, limit
	}
	if c.Direction == Backward {
		start := c.Offset - limit
		if start < 0 {
			start = 0
		}
		return start, c.Offset - start
	}
	return c.Offset, limit
}

type Page struct {
	HasNext        bool
	HasPrevious    bool
	NextCursor     string
	PreviousCursor string
	TotalCount     int64
	PageSize       int
}

// Paginate describes the page that starts at offset and holds count rows.
func Paginate(offset, count int, total int64, pageSize int) Page {
	end := offset + count
	p := Page{
		HasNext:     int64(end) < total,
		HasPrevious: offset > 0,
		TotalCount:  total,
		PageSize:    pageSize,
	}
	if p.HasNext {
		p.NextCursor = Cursor{Offset: end, Direction: Forward}.Encode()
	}
	if p.HasPrevious {
		p.PreviousCursor = Cursor{Offset: offset, Direction: Backward}.Encode()
	}
	return p
}
