package reporting

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/retail-sales-api/internal/domain"
)

// NewPageRequest interpreta page e pageSize; valores ausentes, inválidos ou não
// positivos voltam ao padrão e pageSize nunca passa de maxPageSize
func NewPageRequest(page, pageSize string, defaultPageSize, maxPageSize int) domain.PageRequest {
	req := domain.PageRequest{
		Page:     1,
		PageSize: defaultPageSize,
	}

	if p, err := strconv.Atoi(strings.TrimSpace(page)); err == nil && p > 0 {
		req.Page = p
	}
	if size, err := strconv.Atoi(strings.TrimSpace(pageSize)); err == nil && size > 0 {
		req.PageSize = size
	}
	if maxPageSize > 0 && req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}
	if req.PageSize > 0 && req.Page-1 > math.MaxInt/req.PageSize {
		req.Page = math.MaxInt/req.PageSize + 1
	}

	return req
}

// Offset retorna a posição do primeiro item da página, saturando em
// math.MaxInt quando o produto não cabe em int
func Offset(req domain.PageRequest) int {
	if req.Page < 1 || req.PageSize <= 0 {
		return 0
	}
	if req.Page-1 > math.MaxInt/req.PageSize {
		return math.MaxInt
	}
	return (req.Page - 1) * req.PageSize
}

// NewPagination calcula os metadados da página para o total informado
func NewPagination(req domain.PageRequest, total int) domain.Pagination {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = (total + req.PageSize - 1) / req.PageSize
	}

	return domain.Pagination{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate recorta items[offset, offset+pageSize). Página além da última
// devolve fatia vazia.
func Paginate[T any](items []T, req domain.PageRequest) ([]T, domain.Pagination) {
	pagination := NewPagination(req, len(items))

	offset := Offset(req)
	if req.PageSize <= 0 || offset < 0 || offset >= len(items) {
		return []T{}, pagination
	}

	end := offset + min(req.PageSize, len(items)-offset)
	return items[offset:end], pagination
}
