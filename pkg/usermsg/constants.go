package usermsg

const (
	MsgMissingArtwork       = "missingArtwork"
	MsgMissingCopyOut       = "missingCopyOut"
	MsgMissingScheduledDate = "missingScheduledDate"
	MsgMissingPlatform      = "missingPlatform"
	MsgDeliverableRequired  = "deliverableRequired"
	MsgConfirmIncomplete    = "confirmIncomplete"
	MsgSiblingsNotReady     = "siblingsNotReady"
	MsgPublishReady         = "publishReady"
	MsgNotPublishReady      = "notPublishReady"
	MsgLoginRequired        = "loginRequired"
	MsgSessionExpired       = "sessionExpired"
	MsgSaveFailed           = "saveFailed"
	MsgStatusNotSaved       = "statusNotSaved"
)
