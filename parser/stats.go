package parser

// DocumentStats contains statistical information about an AsyncAPI document
type DocumentStats struct {
	ServerCount    int // Number of servers defined
	ChannelCount   int // Number of channels defined
	OperationCount int // Total publish/subscribe operations across all channels
	MessageCount   int // Number of reusable messages under components
	SchemaCount    int // Number of reusable schemas under components
}

// GetDocumentStats returns statistics for a parsed AsyncAPI document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.ServerCount = doc.Servers.Len()
	stats.ChannelCount = doc.Channels.Len()
	for _, ch := range doc.Channels.All() {
		if ch.Publish != nil {
			stats.OperationCount++
		}
		if ch.Subscribe != nil {
			stats.OperationCount++
		}
	}
	if doc.Components != nil {
		stats.MessageCount = doc.Components.Messages.Len()
		stats.SchemaCount = doc.Components.Schemas.Len()
	}

	return stats
}
