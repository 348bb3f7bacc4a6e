package entities

// PushNotification is the payload handed to the push gateway.
type PushNotification struct {
	Title string
	Body  string
	Data  map[string]string
}

// Notification types carried in PushNotification.Data["type"].
const (
	NotificationTypeOrderCompleted = "order_completed"
	NotificationTypeNewOrder       = "new_order"
)
