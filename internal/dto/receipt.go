package dto

// ReceiptPreviewResponse carries receipt markup as it would be sent to the printer.
type ReceiptPreviewResponse struct {
	TabID      int    `json:"tabId"`
	SequenceID int    `json:"sequenceId"`
	Text       string `json:"text"`
}

// PrintResponse reports how many receipts reached the printer.
type PrintResponse struct {
	Printed  bool `json:"printed"`
	Receipts int  `json:"receipts"`
}
