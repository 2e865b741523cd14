package report

const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export is a generated file ready to be streamed to the client
type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}
