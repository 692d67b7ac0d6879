package catalog

type CreateCategoryRequest struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

type ProductVariant struct {
	Name  string `json:"name" yaml:"name"`
	Price int32  `json:"price" yaml:"price"`
}

type Product struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Variants []ProductVariant `json:"variants" yaml:"variants"`
}
