package constants

// Redis key formats
const (
	KeyMandateLock = "lock:mandate:%s" // lock:mandate:{mandate_id}
	KeySweepLock   = "lock:sweep:%s"   // lock:sweep:{user_id}

	KeyWebhookEvent = "webhook:event:%s" // webhook:event:{provider_event_id}
)
