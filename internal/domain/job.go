package domain

import "strconv"

// JobRecord is one scraped posting in the flat export schema used by the
// downstream importer. The _job_* keys and their order are a persisted-format
// contract; do not rename or reorder them.
type JobRecord struct {
	FeaturedImage string `json:"_job_featured_image"`
	Title         string `json:"_job_title"`
	Featured      int    `json:"_job_featured"`
	Filled        int    `json:"_job_filled"`
	Urgent        int    `json:"_job_urgent"`
	Description   string `json:"_job_description"`
	Category      string `json:"_job_category"`
	Type          string `json:"_job_type"`
	Tag           string `json:"_job_tag"`
	ExpiryDate    string `json:"_job_expiry_date"`
	Gender        string `json:"_job_gender"`
	ApplyType     string `json:"_job_apply_type"`
	ApplyURL      string `json:"_job_apply_url"`
	ApplyEmail    string `json:"_job_apply_email"`
	SalaryType    string `json:"_job_salary_type"`
	Salary        string `json:"_job_salary"`
	MaxSalary     string `json:"_job_max_salary"`
	Experience    string `json:"_job_experience"`
	CareerLevel   string `json:"_job_career_level"`
	Qualification string `json:"_job_qualification"`
	VideoURL      string `json:"_job_video_url"`
	Photos        string `json:"_job_photos"`
	DeadlineDate  string `json:"_job_application_deadline_date"`
	Address       string `json:"_job_address"`
	Location      string `json:"_job_location"`
	MapLocation   string `json:"_job_map_location"`
}

// FieldNames returns the export column order. Values must stay aligned with
// this.
func FieldNames() []string {
	return []string{
		"_job_featured_image",
		"_job_title",
		"_job_featured",
		"_job_filled",
		"_job_urgent",
		"_job_description",
		"_job_category",
		"_job_type",
		"_job_tag",
		"_job_expiry_date",
		"_job_gender",
		"_job_apply_type",
		"_job_apply_url",
		"_job_apply_email",
		"_job_salary_type",
		"_job_salary",
		"_job_max_salary",
		"_job_experience",
		"_job_career_level",
		"_job_qualification",
		"_job_video_url",
		"_job_photos",
		"_job_application_deadline_date",
		"_job_address",
		"_job_location",
		"_job_map_location",
	}
}

// Values returns the record as CSV cells in FieldNames order.
func (r JobRecord) Values() []string {
	return []string{
		r.FeaturedImage,
		r.Title,
		strconv.Itoa(r.Featured),
		strconv.Itoa(r.Filled),
		strconv.Itoa(r.Urgent),
		r.Description,
		r.Category,
		r.Type,
		r.Tag,
		r.ExpiryDate,
		r.Gender,
		r.ApplyType,
		r.ApplyURL,
		r.ApplyEmail,
		r.SalaryType,
		r.Salary,
		r.MaxSalary,
		r.Experience,
		r.CareerLevel,
		r.Qualification,
		r.VideoURL,
		r.Photos,
		r.DeadlineDate,
		r.Address,
		r.Location,
		r.MapLocation,
	}
}
