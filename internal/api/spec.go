package api

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Spec builds the OpenAPI 3 document describing the catalog API. The
// document is assembled programmatically so it always matches the typed
// request/response structs the handlers use.
func Spec() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Catalog API",
			Version:     "1.0.0",
			Description: "Product catalog with discounts, aggregation, filtering, bulk ingest, and OTP password reset.",
		},
		Components: &openapi3.Components{
			Schemas:         schemas(),
			SecuritySchemes: securitySchemes(),
		},
		Paths: paths(),
	}
}

func schemas() openapi3.Schemas {
	product := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema().WithFormat("uuid")).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("price", openapi3.NewInt64Schema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("created_at", openapi3.NewDateTimeSchema())

	productInput := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("price", openapi3.NewInt64Schema()).
		WithProperty("description", openapi3.NewStringSchema())
	productInput.Required = []string{"name", "price", "description"}

	productList := openapi3.NewObjectSchema().
		WithPropertyRef("products", productArrayRef()).
		WithProperty("count", openapi3.NewIntegerSchema()).
		WithProperty("message", openapi3.NewStringSchema())

	errorSchema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("fields", openapi3.NewObjectSchema().
			WithAdditionalProperties(openapi3.NewStringSchema()))

	discountResult := openapi3.NewObjectSchema().
		WithProperty("product", openapi3.NewStringSchema()).
		WithProperty("original_price", openapi3.NewInt64Schema()).
		WithProperty("discounted_price", openapi3.NewInt64Schema())

	failure := openapi3.NewObjectSchema().
		WithProperty("index", openapi3.NewIntegerSchema()).
		WithPropertyRef("payload", componentRef("ProductInput")).
		WithProperty("errors", openapi3.NewObjectSchema().
			WithAdditionalProperties(openapi3.NewStringSchema()))

	bulkResult := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema().WithEnum("success", "failure")).
		WithPropertyRef("created", productArrayRef()).
		WithProperty("failures", openapi3.NewArraySchema().WithItems(failure)).
		WithProperty("created_count", openapi3.NewIntegerSchema()).
		WithProperty("error_count", openapi3.NewIntegerSchema())

	stats := openapi3.NewObjectSchema().
		WithProperty("count", openapi3.NewInt64Schema()).
		WithProperty("total", openapi3.NewInt64Schema()).
		WithProperty("min", openapi3.NewInt64Schema()).
		WithProperty("max", openapi3.NewInt64Schema()).
		WithProperty("average", openapi3.NewFloat64Schema())

	account := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema().WithFormat("uuid")).
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email"))

	token := openapi3.NewObjectSchema().
		WithProperty("token", openapi3.NewStringSchema()).
		WithProperty("expires_in", openapi3.NewInt64Schema())

	message := openapi3.NewObjectSchema().
		WithProperty("message", openapi3.NewStringSchema())

	return openapi3.Schemas{
		"Product":        product.NewRef(),
		"ProductInput":   productInput.NewRef(),
		"ProductList":    productList.NewRef(),
		"Error":          errorSchema.NewRef(),
		"DiscountResult": discountResult.NewRef(),
		"BulkResult":     bulkResult.NewRef(),
		"Stats":          stats.NewRef(),
		"Account":        account.NewRef(),
		"Token":          token.NewRef(),
		"Message":        message.NewRef(),
	}
}

func securitySchemes() openapi3.SecuritySchemes {
	return openapi3.SecuritySchemes{
		"bearerAuth": &openapi3.SecuritySchemeRef{
			Value: openapi3.NewSecurityScheme().
				WithType("http").
				WithScheme("bearer").
				WithBearerFormat("JWT"),
		},
	}
}

func paths() *openapi3.Paths {
	idParam := &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").
			WithRequired(true).
			WithSchema(openapi3.NewStringSchema().WithFormat("uuid")),
	}

	return openapi3.NewPaths(
		openapi3.WithPath("/register/", &openapi3.PathItem{
			Post: operation("register", "Create an account",
				requestBody(registerRequestSchema()),
				responses(201, "Account created", "Account")),
		}),
		openapi3.WithPath("/login/", &openapi3.PathItem{
			Post: operation("login", "Obtain a bearer token",
				requestBody(loginRequestSchema()),
				responses(200, "Token issued", "Token")),
		}),
		openapi3.WithPath("/api/token/", &openapi3.PathItem{
			Post: operation("token", "Obtain a bearer token (alias)",
				requestBody(loginRequestSchema()),
				responses(200, "Token issued", "Token")),
		}),
		openapi3.WithPath("/products/", &openapi3.PathItem{
			Get:  secured(operation("listProducts", "List all products", nil, arrayResponses(200, "Products"))),
			Post: secured(operation("createProduct", "Create a product", requestBodyRef("ProductInput"), responses(201, "Product created", "Product"))),
		}),
		openapi3.WithPath("/products/{id}/", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Put:        secured(operation("updateProduct", "Update a product", requestBodyRef("ProductInput"), responses(200, "Product updated", "Product"))),
			Delete:     secured(operation("deleteProduct", "Delete a product", nil, emptyResponses(204, "Product deleted"))),
		}),
		openapi3.WithPath("/products/bulk/", &openapi3.PathItem{
			Post: secured(operation("bulkCreateProducts", "Create products in bulk", requestBody(bulkRequestSchema()), responses(201, "Batch processed", "BulkResult"))),
		}),
		openapi3.WithPath("/products/search/", &openapi3.PathItem{
			Get: secured(withQuery(operation("searchProducts", "Keyword search over name and description", nil, responses(200, "Matching products", "ProductList")), "q", true)),
		}),
		openapi3.WithPath("/products/price-range/", &openapi3.PathItem{
			Get: secured(withQuery(withQuery(operation("priceRangeProducts", "Products within an inclusive price range", nil, responses(200, "Matching products", "ProductList")), "min", true), "max", true)),
		}),
		openapi3.WithPath("/products/expensive/", &openapi3.PathItem{
			Get: secured(withQuery(operation("expensiveProducts", "Products at or above a price threshold", nil, responses(200, "Matching products", "ProductList")), "min_price", false)),
		}),
		openapi3.WithPath("/products/cheap/", &openapi3.PathItem{
			Get: secured(operation("cheapProducts", "Products under the fixed cheap threshold", nil, responses(200, "Matching products", "ProductList"))),
		}),
		openapi3.WithPath("/products/latest/", &openapi3.PathItem{
			Get: secured(withQuery(operation("latestProducts", "Most recently created products", nil, responses(200, "Matching products", "ProductList")), "limit", false)),
		}),
		openapi3.WithPath("/products/stats/", &openapi3.PathItem{
			Get: secured(operation("productStats", "Price statistics over the catalog", nil, responses(200, "Statistics", "Stats"))),
		}),
		openapi3.WithPath("/total-sales/", &openapi3.PathItem{
			Get: secured(operation("totalSales", "Sum of all product prices", nil, inlineResponses(200, "Total", totalSalesSchema()))),
		}),
		openapi3.WithPath("/discount/{id}/", &openapi3.PathItem{
			Parameters: openapi3.Parameters{idParam},
			Put:        secured(operation("applyDiscount", "Apply a percentage discount to a product", requestBody(discountRequestSchema()), responses(200, "Discount applied", "DiscountResult"))),
		}),
		openapi3.WithPath("/change-password/", &openapi3.PathItem{
			Post: secured(operation("changePassword", "Change the authenticated user's password", requestBody(changePasswordRequestSchema()), responses(200, "Password changed", "Message"))),
		}),
		openapi3.WithPath("/forgot-password/", &openapi3.PathItem{
			Post: operation("forgotPassword", "Request a password reset code", requestBody(forgotPasswordRequestSchema()), responses(200, "Reset code sent", "Message")),
		}),
		openapi3.WithPath("/verify-otp/", &openapi3.PathItem{
			Post: operation("verifyOTP", "Verify a reset code without consuming it", requestBody(verifyOTPRequestSchema()), responses(200, "Code verified", "Message")),
		}),
		openapi3.WithPath("/reset-password/", &openapi3.PathItem{
			Post: operation("resetPassword", "Reset the password with a one-time code", requestBody(resetPasswordRequestSchema()), responses(200, "Password reset", "Message")),
		}),
	)
}

func operation(id, summary string, body *openapi3.RequestBodyRef, resp *openapi3.Responses) *openapi3.Operation {
	return &openapi3.Operation{
		OperationID: id,
		Summary:     summary,
		RequestBody: body,
		Responses:   resp,
	}
}

func secured(op *openapi3.Operation) *openapi3.Operation {
	requirements := openapi3.NewSecurityRequirements().
		With(openapi3.NewSecurityRequirement().Authenticate("bearerAuth"))
	op.Security = requirements
	return op
}

func withQuery(op *openapi3.Operation, name string, required bool) *openapi3.Operation {
	param := openapi3.NewQueryParameter(name).WithSchema(openapi3.NewStringSchema())
	param.Required = required
	op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	return op
}

func requestBody(schema *openapi3.Schema) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(schema),
	}
}

func requestBodyRef(component string) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(componentRef(component)),
	}
}

func responses(status int, description, component string) *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription(description).
				WithJSONSchemaRef(componentRef(component)),
		}),
		withErrorDefault(),
	)
}

func arrayResponses(status int, description string) *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription(description).
				WithJSONSchemaRef(productArrayRef()),
		}),
		withErrorDefault(),
	)
}

func inlineResponses(status int, description string, schema *openapi3.Schema) *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription(description).
				WithJSONSchema(schema),
		}),
		withErrorDefault(),
	)
}

func emptyResponses(status int, description string) *openapi3.Responses {
	return openapi3.NewResponses(
		openapi3.WithStatus(status, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription(description),
		}),
		withErrorDefault(),
	)
}

func withErrorDefault() openapi3.NewResponsesOption {
	return openapi3.WithName("default", openapi3.NewResponse().
		WithDescription("Error").
		WithJSONSchemaRef(componentRef("Error")))
}

func componentRef(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

func productArrayRef() *openapi3.SchemaRef {
	arr := openapi3.NewArraySchema()
	arr.Items = componentRef("Product")
	return arr.NewRef()
}

func totalSalesSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("total", openapi3.NewInt64Schema())
}

func registerRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("password", openapi3.NewStringSchema()).
		WithProperty("password2", openapi3.NewStringSchema())
	s.Required = []string{"username", "email", "password", "password2"}
	return s
}

func loginRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("password", openapi3.NewStringSchema())
	s.Required = []string{"username", "password"}
	return s
}

func changePasswordRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("old_password", openapi3.NewStringSchema()).
		WithProperty("new_password", openapi3.NewStringSchema()).
		WithProperty("password2", openapi3.NewStringSchema())
	s.Required = []string{"old_password", "new_password", "password2"}
	return s
}

func discountRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("discount", openapi3.NewInt64Schema().WithMin(1).WithMax(100))
	s.Required = []string{"discount"}
	return s
}

func bulkRequestSchema() *openapi3.Schema {
	items := openapi3.NewArraySchema()
	items.Items = componentRef("ProductInput")

	s := openapi3.NewObjectSchema().
		WithPropertyRef("products", items.NewRef())
	s.Required = []string{"products"}
	return s
}

func forgotPasswordRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email"))
	s.Required = []string{"email"}
	return s
}

func verifyOTPRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("code", openapi3.NewStringSchema().WithMinLength(6).WithMaxLength(6))
	s.Required = []string{"email", "code"}
	return s
}

func resetPasswordRequestSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("email", openapi3.NewStringSchema().WithFormat("email")).
		WithProperty("code", openapi3.NewStringSchema().WithMinLength(6).WithMaxLength(6)).
		WithProperty("password", openapi3.NewStringSchema()).
		WithProperty("password2", openapi3.NewStringSchema())
	s.Required = []string{"email", "code", "password", "password2"}
	return s
}
