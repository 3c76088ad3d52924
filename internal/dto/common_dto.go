package dto

import "encoding/json"

// RPCRequest is the uniform request envelope. The caller id never travels in
// the payload; it is injected by the auth middleware.
type RPCRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
}

type Pagination struct {
	Page     int `json:"page" validate:"omitempty,min=1"`
	PageSize int `json:"pageSize" validate:"omitempty,min=1,max=100"`
}

func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}

func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type PagedResponse struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	HasMore  bool        `json:"hasMore"`
}

func NewPagedResponse(list interface{}, total int64, p Pagination) *PagedResponse {
	return &PagedResponse{
		List:     list,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
		HasMore:  int64(p.Page*p.PageSize) < total,
	}
}
