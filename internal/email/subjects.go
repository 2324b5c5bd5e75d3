package email

const (
	subjectOwnerLeadFmt = "[New Lead] %s — %s"
	subjectClientAckFmt = "We received your query: %s"
)
