package models

type Bank struct {
	ID              string `json:"_id"`
	BankName        string `json:"bankName"`
	Number          string `json:"number"`
	AccountFullName string `json:"accountFullName"`
}

// BankForm holds the editable fields of a bank.
type BankForm struct {
	Number          string `json:"number"`
	AccountFullName string `json:"accountFullName"`
}

type BankListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Banks   []Bank `json:"banks"`
}

type BankUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Bank    Bank   `json:"bank"`
}
