package valueobject

// SignerRole: сторона, подписывающая контракт.
type SignerRole string

const (
	SignerRoleClient   SignerRole = "client"
	SignerRoleCreative SignerRole = "creative"
)

// ParseSignerRole распознаёт роль подписанта. Второе значение false для любой другой строки.
func ParseSignerRole(raw string) (SignerRole, bool) {
	switch SignerRole(raw) {
	case SignerRoleClient:
		return SignerRoleClient, true
	case SignerRoleCreative:
		return SignerRoleCreative, true
	}
	return "", false
}

// ContractState выводится из двух независимых флагов подписи.
type ContractState string

const (
	ContractStateCreated        ContractState = "created"
	ContractStateClientSigned   ContractState = "client_signed"
	ContractStateCreativeSigned ContractState = "creative_signed"
	ContractStateFullySigned    ContractState = "fully_signed"
)

func ContractStateOf(clientSigned, creativeSigned bool) ContractState {
	switch {
	case clientSigned && creativeSigned:
		return ContractStateFullySigned
	case clientSigned:
		return ContractStateClientSigned
	case creativeSigned:
		return ContractStateCreativeSigned
	}
	return ContractStateCreated
}
