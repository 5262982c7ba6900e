package models

// Branch identifies the military branch a service unit or job grade belongs
// to. Exactly one branch applies per service unit.
type Branch string

const (
	BranchArmy        Branch = "army"
	BranchNavy        Branch = "navy"
	BranchMarineCorps Branch = "marine_corps"
	BranchAirForce    Branch = "air_force"
	BranchSpaceForce  Branch = "space_force"
	BranchCoastGuard  Branch = "coast_guard"
	BranchJoint       Branch = "joint"
	BranchCivilian    Branch = "civilian"
)

// ParseBranch matches s against the closed branch set.
func ParseBranch(s string) (Branch, error) {
	switch Branch(s) {
	case BranchArmy, BranchNavy, BranchMarineCorps, BranchAirForce,
		BranchSpaceForce, BranchCoastGuard, BranchJoint, BranchCivilian:
		return Branch(s), nil
	}
	return "", &InvalidEnumValueError{Enum: "branch", Value: s}
}

// PhotoStatus is the review state of a submitted photo. The progression is
// uploaded, pending_processing, needs_approval, published, with archived as a
// terminal state; the client does not enforce the order.
type PhotoStatus string

const (
	PhotoStatusUploaded          PhotoStatus = "uploaded"
	PhotoStatusPendingProcessing PhotoStatus = "pending_processing"
	PhotoStatusNeedsApproval     PhotoStatus = "needs_approval"
	PhotoStatusPublished         PhotoStatus = "published"
	PhotoStatusArchived          PhotoStatus = "archived"
)

// ParsePhotoStatus matches s against the closed photo status set.
func ParsePhotoStatus(s string) (PhotoStatus, error) {
	switch PhotoStatus(s) {
	case PhotoStatusUploaded, PhotoStatusPendingProcessing,
		PhotoStatusNeedsApproval, PhotoStatusPublished, PhotoStatusArchived:
		return PhotoStatus(s), nil
	}
	return "", &InvalidEnumValueError{Enum: "photo status", Value: s}
}

// GraphicStatus is the review state of a submitted graphic, with the same
// variant set as PhotoStatus.
type GraphicStatus string

const (
	GraphicStatusUploaded          GraphicStatus = "uploaded"
	GraphicStatusPendingProcessing GraphicStatus = "pending_processing"
	GraphicStatusNeedsApproval     GraphicStatus = "needs_approval"
	GraphicStatusPublished         GraphicStatus = "published"
	GraphicStatusArchived          GraphicStatus = "archived"
)

// ParseGraphicStatus matches s against the closed graphic status set.
func ParseGraphicStatus(s string) (GraphicStatus, error) {
	switch GraphicStatus(s) {
	case GraphicStatusUploaded, GraphicStatusPendingProcessing,
		GraphicStatusNeedsApproval, GraphicStatusPublished, GraphicStatusArchived:
		return GraphicStatus(s), nil
	}
	return "", &InvalidEnumValueError{Enum: "graphic status", Value: s}
}

// PublicationIssueStatus is the review state of a publication issue. Issues
// have no archived state.
type PublicationIssueStatus string

const (
	PublicationIssueStatusUploaded          PublicationIssueStatus = "uploaded"
	PublicationIssueStatusPendingProcessing PublicationIssueStatus = "pending_processing"
	PublicationIssueStatusNeedsApproval     PublicationIssueStatus = "needs_approval"
	PublicationIssueStatusPublished         PublicationIssueStatus = "published"
)

// ParsePublicationIssueStatus matches s against the closed issue status set.
func ParsePublicationIssueStatus(s string) (PublicationIssueStatus, error) {
	switch PublicationIssueStatus(s) {
	case PublicationIssueStatusUploaded, PublicationIssueStatusPendingProcessing,
		PublicationIssueStatusNeedsApproval, PublicationIssueStatusPublished:
		return PublicationIssueStatus(s), nil
	}
	return "", &InvalidEnumValueError{Enum: "publication issue status", Value: s}
}
