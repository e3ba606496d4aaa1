package domain

// Stage identifies where a conversation currently is. The engine dispatches
// on it exhaustively; an unknown value is answered with a fallback prompt
// without advancing the session.
type Stage string

const (
	StageWelcome     Stage = "welcome"
	StageGetAction   Stage = "get_action"
	StageCancelName  Stage = "cancel_name"
	StageCancelPhone Stage = "cancel_phone"
	StageGetName     Stage = "get_name"
	StageGetPhone    Stage = "get_phone"
	StageCategory    Stage = "category"
	StageFlavor      Stage = "flavor"
	StageTopping     Stage = "topping"
	StageCustomize   Stage = "customize"
	StageConfirm     Stage = "confirm"
)

// IsValid reports whether s is one of the known stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageWelcome, StageGetAction, StageCancelName, StageCancelPhone,
		StageGetName, StageGetPhone, StageCategory, StageFlavor,
		StageTopping, StageCustomize, StageConfirm:
		return true
	}
	return false
}

func (s Stage) String() string { return string(s) }
