package usecase

// Export for testing
var (
	FindLargest       = findLargest
	ConvertStatus     = convertStatus
	ConvertConclusion = convertConclusion
)
