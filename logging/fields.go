package logging

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldCacheKey  = "cache_key"
	FieldBackend   = "backend"
	FieldPrincipal = "principal"
	FieldRate      = "annual_rate"
	FieldTermYears = "term_years"
	FieldPayments  = "payments"
	FieldConverged = "converged"
	FieldRemoved   = "removed"
)

// Components
const (
	ComponentApp          = "app"
	ComponentAmortization = "amortization"
	ComponentComparison   = "comparison"
	ComponentCache        = "cache"
	ComponentTUI          = "tui"
)

// Operations
const (
	OpCalculate = "calculate"
	OpCompare   = "compare"
	OpCacheGet  = "cache_get"
	OpCacheSet  = "cache_set"
	OpStartup   = "startup"
	OpRender    = "render"
)
