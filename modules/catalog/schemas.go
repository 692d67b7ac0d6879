package catalog

import (
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const CodeNotBlank = "not_blank"

// notBlank is the category flavour of the blank check, registered as a
// custom rule so it carries its own code and message.
func notBlank() validator.Rule[string] {
	return validator.Custom(CodeNotBlank, func(value string) error {
		if strings.TrimSpace(value) == "" {
			return validator.NewViolation(CodeNotBlank, "Value cannot be blank").
				WithTranslation("catalog.not_blank", nil)
		}
		return nil
	})
}

var CreateCategorySchema = func() *validator.Schema[CreateCategoryRequest, validator.NoContext] {
	s := validator.New[CreateCategoryRequest, validator.NoContext]("create_category")
	validator.Field(s, "id", func(r CreateCategoryRequest) string { return r.ID }, notBlank())
	validator.Field(s, "name", func(r CreateCategoryRequest) string { return r.Name }, notBlank())
	validator.Field(s, "parent_id", func(r CreateCategoryRequest) string { return r.ParentID }, validator.OptionalUUID())
	s.Record("parent_id", "parent_is_self", func(r CreateCategoryRequest) error {
		if r.ParentID != "" && r.ParentID == r.ID {
			return validator.NewViolation("parent_is_self", "category cannot be its own parent").
				WithTranslation("catalog.parent_is_self", nil)
		}
		return nil
	}, validator.SkipOnFieldErrors(), validator.DependsOn("id", "parent_id"))
	return s
}()

var ProductVariantSchema = func() *validator.Schema[ProductVariant, validator.NoContext] {
	s := validator.New[ProductVariant, validator.NoContext]("product_variant")
	validator.Field(s, "name", func(v ProductVariant) string { return v.Name }, validator.Length(3, 100))
	validator.Field(s, "price", func(v ProductVariant) int32 { return v.Price }, validator.Range[int32](12, 100000000))
	return s
}()

var ProductSchema = func() *validator.Schema[Product, validator.NoContext] {
	s := validator.New[Product, validator.NoContext]("product")
	validator.Field(s, "id", func(p Product) string { return p.ID }, validator.Length(3, 200))
	validator.Field(s, "name", func(p Product) string { return p.Name }, validator.Length(3, 200))
	validator.Each(s, "variants", func(p Product) []ProductVariant { return p.Variants }, ProductVariantSchema,
		validator.MinItems[ProductVariant](1))
	return s
}()
