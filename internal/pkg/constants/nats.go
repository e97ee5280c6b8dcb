package constants

// NATS subjects
const (
	// SubjectAuditEvent is formatted with the event type, e.g. roundup.audit.mandate_debited
	SubjectAuditEvent    = "roundup.audit.%s"
	SubjectAuditWildcard = "roundup.audit.>"

	// SubjectPaymentCallback carries provider callbacks relayed by other services
	SubjectPaymentCallback = "payments.callback"
	QueuePaymentCallback   = "roundup-callbacks"
)

// NSQ topics
const (
	TopicPreDebitNotice   = "roundup.notice.predebit"
	ChannelNoticeDelivery = "delivery"
)
