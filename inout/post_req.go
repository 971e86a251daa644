package inout

const (
	TagLogicAny = "ANY"
	TagLogicAll = "ALL"
)

type CreatePostReq struct {
	Title             string `json:"title" binding:"required,min=5,max=200"`
	Description       string `json:"description" binding:"required,min=10"`
	CategoryId        *int   `json:"categoryId" binding:"omitempty,min=1"`
	ImageUrl          string `json:"imageUrl" binding:"omitempty,max=500"`
	ProvinceCode      string `json:"provinceCode" binding:"required"`
	ProvinceName      string `json:"provinceName" binding:"required"`
	DistrictCode      string `json:"districtCode" binding:"required"`
	DistrictName      string `json:"districtName" binding:"required"`
	NeighbourhoodName string `json:"neighbourhoodName" binding:"required"`
	TagIds            []int  `json:"tagIds"`
}

// UpdatePostReq is a partial patch; only non-nil fields are applied. Status
// is deliberately absent, moderation owns it.
type UpdatePostReq struct {
	Title             *string `json:"title" binding:"omitempty,min=5,max=200"`
	Description       *string `json:"description" binding:"omitempty,min=10"`
	CategoryId        *int    `json:"categoryId"`
	ImageUrl          *string `json:"imageUrl" binding:"omitempty,max=500"`
	ProvinceCode      *string `json:"provinceCode"`
	ProvinceName      *string `json:"provinceName"`
	DistrictCode      *string `json:"districtCode"`
	DistrictName      *string `json:"districtName"`
	NeighbourhoodName *string `json:"neighbourhoodName"`
}

type UpdateTagsReq struct {
	TagIds []int `json:"tagIds" binding:"required"`
}

type RejectPostReq struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

type PostListQuery struct {
	Search            string `form:"search"`
	CategoryId        int    `form:"categoryId"`
	TagIds            string `form:"tagIds"` // comma-separated ids
	TagLogic          string `form:"tagLogic" binding:"omitempty,oneof=ANY ALL"`
	ProvinceCode      string `form:"provinceCode"`
	DistrictCode      string `form:"districtCode"`
	NeighbourhoodName string `form:"neighbourhoodName"`
	Page              int    `form:"page"`
	Limit             int    `form:"limit"`
}
