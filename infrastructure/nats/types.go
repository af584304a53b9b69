package nats

// Stream and Consumer names
const (
	StreamName   = "BLOG_EVENTS"
	ConsumerName = "NOTIFIER"

	// subject รูปแบบ blog.events.<kind> (comment, reply, like)
	SubjectEvents       = "blog.events"
	SubjectEventsNested = "blog.events.>"
)

// EventSubject สร้าง subject จาก event kind
func EventSubject(kind string) string {
	return SubjectEvents + "." + kind
}
