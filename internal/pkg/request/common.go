package request

// ByIDRequest binds the :id path parameter shared by detail endpoints.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Validate is a no-op; the binding tags cover ByIDRequest.
func (r *ByIDRequest) Validate() error {
	return nil
}

// ListParams holds the pagination and sorting query parameters common to
// list endpoints. Embedded by per-module list DTOs.
type ListParams struct {
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}
