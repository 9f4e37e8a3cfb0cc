package constants

// User-facing notification messages. The monitoring console ships with
// Japanese operator messages; the backend defines the status labels.
const (
	// Notification category labels
	LabelError   = "エラー"
	LabelSuccess = "成功"

	// Terminal outcome messages, one per outcome
	MsgLoadFailed = "設定の読み込みに失敗しました"
	MsgSaveFailed = "設定の保存に失敗しました"
	MsgSaveOK     = "設定を保存しました"
)
