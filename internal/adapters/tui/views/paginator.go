package views

// Paginator keeps a cursor over a result list and the page that shows it
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	total      int
}

// NewPaginator creates a paginator showing pageSize rows at a time
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal resets the paginator for a new list of total rows
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.cursor = 0
	p.pageOffset = 0
}

// Cursor returns the absolute index of the selected row
func (p *Paginator) Cursor() int {
	return p.cursor
}

// Up moves the cursor up, reporting whether it moved
func (p *Paginator) Up() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// Down moves the cursor down, reporting whether it moved
func (p *Paginator) Down() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// VisibleRange returns the half-open range of rows on the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.total)
}

// Pages returns the current page (1-based) and the page count
func (p *Paginator) Pages() (current, total int) {
	total = max(1, (p.total+p.pageSize-1)/p.pageSize)
	return p.pageOffset/p.pageSize + 1, total
}

func (p *Paginator) follow() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
