package domain

import "strings"

// AccountSource seleciona a estratégia de resolução de contas de anúncio
type AccountSource string

const (
	// AccountSourcePersonal lista as contas diretamente ligadas ao usuário (/me/adaccounts)
	AccountSourcePersonal AccountSource = "personal"
	// AccountSourceBusiness lista as contas pertencentes aos business managers do usuário
	AccountSourceBusiness AccountSource = "business"
)

// AccountSources retorna todas as origens suportadas, na ordem de exibição
func AccountSources() []AccountSource {
	return []AccountSource{AccountSourcePersonal, AccountSourceBusiness}
}

// ParseAccountSource converte uma string em AccountSource, falhando para valores desconhecidos
func ParseAccountSource(value string) (AccountSource, error) {
	source := AccountSource(strings.ToLower(strings.TrimSpace(value)))
	if err := source.Validate(); err != nil {
		return "", err
	}

	return source, nil
}

func (s AccountSource) Validate() error {
	switch s {
	case AccountSourcePersonal, AccountSourceBusiness:
		return nil
	default:
		return &UnknownSourceError{Source: string(s)}
	}
}

func (s AccountSource) String() string {
	return string(s)
}

type AdAccount struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Ad carrega o ID da conta dona para que os registros não precisem resolver a posse novamente
type Ad struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
}

// MergeAdAccounts concatena listas de contas descartando IDs repetidos, mantendo a primeira ocorrência
func MergeAdAccounts(lists ...[]AdAccount) []AdAccount {
	seen := make(map[string]struct{})
	merged := make([]AdAccount, 0)

	for _, list := range lists {
		for _, account := range list {
			if _, ok := seen[account.ID]; ok {
				continue
			}
			seen[account.ID] = struct{}{}
			merged = append(merged, account)
		}
	}

	return merged
}
