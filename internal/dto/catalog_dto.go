package dto

type CreateMapRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Cover       string `json:"cover" validate:"omitempty,max=255"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type UpdateMapRequest struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"omitempty,max=128"`
	Cover       string `json:"cover" validate:"omitempty,max=255"`
	Description string `json:"description"`
	SortOrder   *int   `json:"sortOrder"`
}

type CreateHeroRequest struct {
	Name      string `json:"name" validate:"required,max=128"`
	Avatar    string `json:"avatar" validate:"omitempty,max=255"`
	Class     string `json:"class" validate:"omitempty,max=64"`
	SortOrder int    `json:"sortOrder"`
}

type UpdateHeroRequest struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"omitempty,max=128"`
	Avatar    string `json:"avatar" validate:"omitempty,max=255"`
	Class     string `json:"class" validate:"omitempty,max=64"`
	SortOrder *int   `json:"sortOrder"`
}

type GetByIDRequest struct {
	ID string `json:"id" validate:"required"`
}

type ListCatalogRequest struct {
	Pagination
}
