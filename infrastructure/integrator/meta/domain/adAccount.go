package metadomain

import "strings"

const accountPrefix = "act_"

type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Ad struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// AccountNode devolve o id do nó da conta no Graph (act_<id>), aceitando os dois formatos
func AccountNode(id string) string {
	if id == "" || strings.HasPrefix(id, accountPrefix) {
		return id
	}
	return accountPrefix + id
}
