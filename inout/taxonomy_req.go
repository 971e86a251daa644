package inout

// Categories and tags share the same request shape: a single unique name.

type CreateCategoryReq struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateCategoryReq struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type CreateTagReq struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateTagReq struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
