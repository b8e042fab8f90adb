package entity

type CropStatus string

const (
	CropPending  CropStatus = "pending"
	CropApproved CropStatus = "approved"
	CropRejected CropStatus = "rejected"
	CropListed   CropStatus = "listed"
)

var cropTransitions = map[CropStatus][]CropStatus{
	CropPending:  {CropApproved, CropRejected},
	CropApproved: {CropListed},
}

func (s CropStatus) Valid() bool {
	switch s {
	case CropPending, CropApproved, CropRejected, CropListed:
		return true
	}
	return false
}

// Visible is the single rule deciding whether buyers can see and order a crop.
func (s CropStatus) Visible() bool {
	return s == CropApproved || s == CropListed
}

func (s CropStatus) CanTransitionTo(next CropStatus) bool {
	for _, to := range cropTransitions[s] {
		if to == next {
			return true
		}
	}
	return false
}

// VisibleCropStatuses lists the statuses matched by Visible, for use in queries.
func VisibleCropStatuses() []CropStatus {
	return []CropStatus{CropApproved, CropListed}
}
