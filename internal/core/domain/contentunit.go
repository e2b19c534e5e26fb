package domain

// ContentUnit is the shared "post" record that sibling tasks (design,
// copy, community) collectively complete. ScheduledDate and
// ScheduledTime are already normalized to "2006-01-02" / "15:04" by the
// binder; ScheduledTime is empty when the upstream record carries no
// time component.
type ContentUnit struct {
	ID                uint64
	CustomerID        uint64
	Sequence          int
	ScheduledDate     string
	ScheduledTime     string
	Platform          string
	CopyIn            string
	CopyOut           string
	IdeaTema          string
	Campaign          string
	Pilar             string
	Referencia        string
	Arte              *FileRef
	ArteFiles         []FileRef
	ElementosUtilizar []FileRef
}

// HasArtwork reports whether the unit itself carries a visual asset,
// either the single arte file or a carousel.
func (u ContentUnit) HasArtwork() bool {
	return u.Arte != nil || len(u.ArteFiles) > 0
}

// MetadataForm is the editable working copy of a unit's scheduling and
// textual fields. It is kept apart from the bound ContentUnit so a
// failed save never corrupts the bound state.
type MetadataForm struct {
	ScheduledDate string
	ScheduledTime string
	Platform      string
	CopyIn        string
	CopyOut       string
	IdeaTema      string
	Campaign      string
	Pilar         string
	Referencia    string
}

// FormFromUnit seeds a form with the unit's current field values.
func FormFromUnit(u ContentUnit) MetadataForm {
	return MetadataForm{
		ScheduledDate: u.ScheduledDate,
		ScheduledTime: u.ScheduledTime,
		Platform:      u.Platform,
		CopyIn:        u.CopyIn,
		CopyOut:       u.CopyOut,
		IdeaTema:      u.IdeaTema,
		Campaign:      u.Campaign,
		Pilar:         u.Pilar,
		Referencia:    u.Referencia,
	}
}
