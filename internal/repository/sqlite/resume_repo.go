package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go-resume-builder/internal/domain"
)

type resumeRepo struct {
	store *Store
}

// NewResumeRepository returns a domain.ResumeRepository backed by the
// embedded store.
func NewResumeRepository(store *Store) domain.ResumeRepository {
	return &resumeRepo{store: store}
}

// touch bumps the resume's updated_at so GetOrCreate keeps selecting the
// most recently edited resume.
func touch(ctx context.Context, tx *sql.Tx, resumeID int64) error {
	_, err := tx.ExecContext(ctx, `UPDATE resumes SET updated_at = datetime('now') WHERE id = ?`, resumeID)
	return err
}

func (r *resumeRepo) GetOrCreate(ctx context.Context) (int64, error) {
	var id int64
	err := r.store.QueryRow(ctx, `SELECT id FROM resumes ORDER BY updated_at DESC LIMIT 1`).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up resume: %w", err)
	}
	return r.Create(ctx, domain.DefaultResumeName, domain.DefaultStyle, domain.DefaultTheme, domain.DefaultFont)
}

func (r *resumeRepo) Create(ctx context.Context, name, style, theme, font string) (int64, error) {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO resumes (name, style, theme, font) VALUES (?, ?, ?, ?)`,
		name, style, theme, font)
	if err != nil {
		return 0, fmt.Errorf("failed to create resume: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read resume id: %w", err)
	}

	// Singletons exist from birth, empty.
	if _, err := tx.ExecContext(ctx, `INSERT INTO personal_info (resume_id) VALUES (?)`, id); err != nil {
		return 0, fmt.Errorf("failed to create personal info: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO profile_summary (resume_id) VALUES (?)`, id); err != nil {
		return 0, fmt.Errorf("failed to create profile summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit resume: %w", err)
	}
	return id, r.store.Persist(ctx)
}

func (r *resumeRepo) UpdateConfig(ctx context.Context, resumeID int64, style, theme, font string) error {
	_, err := r.store.Exec(ctx,
		`UPDATE resumes SET style = ?, theme = ?, font = ?, updated_at = datetime('now') WHERE id = ?`,
		style, theme, font, resumeID)
	if err != nil {
		return fmt.Errorf("failed to update resume config: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) Delete(ctx context.Context, resumeID int64) error {
	// Foreign keys cascade through every child table.
	if _, err := r.store.Exec(ctx, `DELETE FROM resumes WHERE id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return r.store.Persist(ctx)
}

// ============================================================================
// Singletons
// ============================================================================

func (r *resumeRepo) SavePersonalInfo(ctx context.Context, resumeID int64, info domain.PersonalInfo) error {
	var existing int64
	err := r.store.QueryRow(ctx, `SELECT id FROM personal_info WHERE resume_id = ?`, resumeID).Scan(&existing)
	switch {
	case err == nil:
		_, err = r.store.Exec(ctx, `UPDATE personal_info SET
			full_name = ?, job_title = ?, email = ?, phone = ?, location = ?, linkedin = ?, portfolio = ?
			WHERE resume_id = ?`,
			info.FullName, info.JobTitle, info.Email, info.Phone, info.Location, info.LinkedIn, info.Portfolio, resumeID)
	case errors.Is(err, sql.ErrNoRows):
		_, err = r.store.Exec(ctx, `INSERT INTO personal_info
			(resume_id, full_name, job_title, email, phone, location, linkedin, portfolio)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			resumeID, info.FullName, info.JobTitle, info.Email, info.Phone, info.Location, info.LinkedIn, info.Portfolio)
	default:
		return fmt.Errorf("failed to look up personal info: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to save personal info: %w", err)
	}
	if _, err := r.store.Exec(ctx, `UPDATE resumes SET updated_at = datetime('now') WHERE id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveProfileSummary(ctx context.Context, resumeID int64, summary string) error {
	var existing int64
	err := r.store.QueryRow(ctx, `SELECT id FROM profile_summary WHERE resume_id = ?`, resumeID).Scan(&existing)
	switch {
	case err == nil:
		_, err = r.store.Exec(ctx, `UPDATE profile_summary SET summary = ? WHERE resume_id = ?`, summary, resumeID)
	case errors.Is(err, sql.ErrNoRows):
		_, err = r.store.Exec(ctx, `INSERT INTO profile_summary (resume_id, summary) VALUES (?, ?)`, resumeID, summary)
	default:
		return fmt.Errorf("failed to look up profile summary: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to save profile summary: %w", err)
	}
	if _, err := r.store.Exec(ctx, `UPDATE resumes SET updated_at = datetime('now') WHERE id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	return r.store.Persist(ctx)
}

// ============================================================================
// Ordered collections (wholesale replace)
// ============================================================================

func (r *resumeRepo) SaveWorkExperience(ctx context.Context, resumeID int64, entries []domain.WorkExperience) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM work_achievements WHERE work_experience_id IN
			(SELECT id FROM work_experience WHERE resume_id = ?)`, resumeID); err != nil {
		return fmt.Errorf("failed to clear achievements: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM projects WHERE work_experience_id IN
			(SELECT id FROM work_experience WHERE resume_id = ?)`, resumeID); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM work_experience WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear work experience: %w", err)
	}

	for i, entry := range entries {
		res, err := tx.ExecContext(ctx, `INSERT INTO work_experience
			(resume_id, company, role, location, start_date, end_date, description, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			resumeID, entry.Company, entry.Role, entry.Location, entry.StartDate, entry.EndDate, entry.Description, i)
		if err != nil {
			return fmt.Errorf("failed to insert work entry: %w", err)
		}
		workID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read work entry id: %w", err)
		}

		for j, achievement := range entry.Achievements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO work_achievements (work_experience_id, achievement, sort_order) VALUES (?, ?, ?)`,
				workID, achievement, j); err != nil {
				return fmt.Errorf("failed to insert achievement: %w", err)
			}
		}
		for j, p := range entry.Projects {
			if _, err := tx.ExecContext(ctx, `INSERT INTO projects
				(resume_id, work_experience_id, title, description, technologies, link, start_date, end_date, sort_order)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				resumeID, workID, p.Title, p.Description, p.Technologies, p.Link, p.StartDate, p.EndDate, j); err != nil {
				return fmt.Errorf("failed to insert project: %w", err)
			}
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit work experience: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveEducation(ctx context.Context, resumeID int64, entries []domain.Education) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM education WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear education: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO education
			(resume_id, institution, degree, field, start_date, end_date, gpa, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			resumeID, entry.Institution, entry.Degree, entry.Field, entry.StartDate, entry.EndDate, entry.GPA, i); err != nil {
			return fmt.Errorf("failed to insert education entry: %w", err)
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit education: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveSkills(ctx context.Context, resumeID int64, categories []domain.SkillCategory) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM skill_items WHERE skill_id IN (SELECT id FROM skills WHERE resume_id = ?)`, resumeID); err != nil {
		return fmt.Errorf("failed to clear skill items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM skills WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	for i, cat := range categories {
		bulleted := 0
		if cat.Bulleted {
			bulleted = 1
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO skills (resume_id, category, bulleted, sort_order) VALUES (?, ?, ?, ?)`,
			resumeID, cat.Category, bulleted, i)
		if err != nil {
			return fmt.Errorf("failed to insert skill category: %w", err)
		}
		skillID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read skill id: %w", err)
		}
		for j, item := range cat.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO skill_items (skill_id, name, sort_order) VALUES (?, ?, ?)`,
				skillID, item, j); err != nil {
				return fmt.Errorf("failed to insert skill item: %w", err)
			}
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit skills: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveLicenses(ctx context.Context, resumeID int64, entries []domain.License) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM licenses WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear licenses: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO licenses
			(resume_id, name, issuing_org, issue_date, expiration_date, license_number, description, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			resumeID, entry.Name, entry.IssuingOrg, entry.IssueDate, entry.ExpirationDate,
			entry.LicenseNumber, entry.Description, i); err != nil {
			return fmt.Errorf("failed to insert license: %w", err)
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit licenses: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveCertifications(ctx context.Context, resumeID int64, entries []domain.Certification) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM certifications WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear certifications: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO certifications
			(resume_id, name, issuing_org, date, credential_id, sort_order)
			VALUES (?, ?, ?, ?, ?, ?)`,
			resumeID, entry.Name, entry.IssuingOrg, entry.Date, entry.CredentialID, i); err != nil {
			return fmt.Errorf("failed to insert certification: %w", err)
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit certifications: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveInternships(ctx context.Context, resumeID int64, entries []domain.Internship) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM internships WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear internships: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx, `INSERT INTO internships
			(resume_id, company, role, start_date, end_date, description, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			resumeID, entry.Company, entry.Role, entry.StartDate, entry.EndDate, entry.Description, i); err != nil {
			return fmt.Errorf("failed to insert internship: %w", err)
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit internships: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveLanguages(ctx context.Context, resumeID int64, entries []domain.Language) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM languages WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear languages: %w", err)
	}
	for i, entry := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO languages (resume_id, language, proficiency, sort_order) VALUES (?, ?, ?, ?)`,
			resumeID, entry.Language, entry.Proficiency, i); err != nil {
			return fmt.Errorf("failed to insert language: %w", err)
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit languages: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) SaveCustomSections(ctx context.Context, resumeID int64, sections []domain.CustomSection) error {
	tx, err := r.store.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM custom_section_items WHERE custom_section_id IN
			(SELECT id FROM custom_sections WHERE resume_id = ?)`, resumeID); err != nil {
		return fmt.Errorf("failed to clear custom section items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM custom_sections WHERE resume_id = ?`, resumeID); err != nil {
		return fmt.Errorf("failed to clear custom sections: %w", err)
	}

	for i, section := range sections {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO custom_sections (resume_id, title, sort_order) VALUES (?, ?, ?)`,
			resumeID, section.Title, i)
		if err != nil {
			return fmt.Errorf("failed to insert custom section: %w", err)
		}
		sectionID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read custom section id: %w", err)
		}
		for j, item := range section.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO custom_section_items (custom_section_id, content, sort_order) VALUES (?, ?, ?)`,
				sectionID, item, j); err != nil {
				return fmt.Errorf("failed to insert custom section item: %w", err)
			}
		}
	}

	if err := touch(ctx, tx, resumeID); err != nil {
		return fmt.Errorf("failed to touch resume: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit custom sections: %w", err)
	}
	return r.store.Persist(ctx)
}

// ============================================================================
// Section order
// ============================================================================

func (r *resumeRepo) SaveSectionOrder(ctx context.Context, resumeID int64, order []domain.SectionKey) error {
	encoded, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode section order: %w", err)
	}
	if _, err := r.store.Exec(ctx,
		`UPDATE resumes SET section_order = ?, updated_at = datetime('now') WHERE id = ?`,
		string(encoded), resumeID); err != nil {
		return fmt.Errorf("failed to save section order: %w", err)
	}
	return r.store.Persist(ctx)
}

func (r *resumeRepo) GetSectionOrder(ctx context.Context, resumeID int64) ([]domain.SectionKey, error) {
	var raw sql.NullString
	err := r.store.QueryRow(ctx, `SELECT section_order FROM resumes WHERE id = ?`, resumeID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultSectionOrder(), nil
		}
		return nil, fmt.Errorf("failed to read section order: %w", err)
	}
	if !raw.Valid || raw.String == "" {
		return domain.DefaultSectionOrder(), nil
	}
	var order []domain.SectionKey
	if err := json.Unmarshal([]byte(raw.String), &order); err != nil || len(order) == 0 {
		// Malformed or empty stored value falls back to the default.
		return domain.DefaultSectionOrder(), nil
	}
	return order, nil
}

// ============================================================================
// Load
// ============================================================================

func (r *resumeRepo) Load(ctx context.Context, resumeID int64) (*domain.ResumeDocument, error) {
	var cfg domain.ResumeConfig
	err := r.store.QueryRow(ctx,
		`SELECT id, name, style, theme, font, created_at, updated_at FROM resumes WHERE id = ?`,
		resumeID).Scan(&cfg.ID, &cfg.Name, &cfg.Style, &cfg.Theme, &cfg.Font, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load resume config: %w", err)
	}
	if cfg.SectionOrder, err = r.GetSectionOrder(ctx, resumeID); err != nil {
		return nil, err
	}

	doc := &domain.ResumeDocument{Config: cfg}

	err = r.store.QueryRow(ctx, `SELECT
		COALESCE(full_name,''), COALESCE(job_title,''), COALESCE(email,''), COALESCE(phone,''),
		COALESCE(location,''), COALESCE(linkedin,''), COALESCE(portfolio,'')
		FROM personal_info WHERE resume_id = ?`, resumeID).Scan(
		&doc.PersonalInfo.FullName, &doc.PersonalInfo.JobTitle, &doc.PersonalInfo.Email,
		&doc.PersonalInfo.Phone, &doc.PersonalInfo.Location, &doc.PersonalInfo.LinkedIn,
		&doc.PersonalInfo.Portfolio)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load personal info: %w", err)
	}

	err = r.store.QueryRow(ctx,
		`SELECT COALESCE(summary,'') FROM profile_summary WHERE resume_id = ?`, resumeID).
		Scan(&doc.ProfileSummary)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load profile summary: %w", err)
	}

	if doc.WorkExperience, err = r.loadWorkExperience(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Education, err = r.loadEducation(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Skills, err = r.loadSkills(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Licenses, err = r.loadLicenses(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Certifications, err = r.loadCertifications(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Internships, err = r.loadInternships(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.Languages, err = r.loadLanguages(ctx, resumeID); err != nil {
		return nil, err
	}
	if doc.CustomSections, err = r.loadCustomSections(ctx, resumeID); err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *resumeRepo) loadWorkExperience(ctx context.Context, resumeID int64) ([]domain.WorkExperience, error) {
	rows, err := r.store.Query(ctx, `SELECT id,
		COALESCE(company,''), COALESCE(role,''), COALESCE(location,''),
		COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(description,'')
		FROM work_experience WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load work experience: %w", err)
	}
	defer rows.Close()

	type workRow struct {
		id    int64
		entry domain.WorkExperience
	}
	var collected []workRow
	for rows.Next() {
		var w workRow
		if err := rows.Scan(&w.id, &w.entry.Company, &w.entry.Role, &w.entry.Location,
			&w.entry.StartDate, &w.entry.EndDate, &w.entry.Description); err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		collected = append(collected, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work entries: %w", err)
	}

	entries := make([]domain.WorkExperience, 0, len(collected))
	for _, w := range collected {
		if w.entry.Achievements, err = r.loadStrings(ctx,
			`SELECT COALESCE(achievement,'') FROM work_achievements WHERE work_experience_id = ? ORDER BY sort_order`,
			w.id); err != nil {
			return nil, fmt.Errorf("failed to load achievements: %w", err)
		}
		if w.entry.Projects, err = r.loadProjects(ctx, w.id); err != nil {
			return nil, err
		}
		entries = append(entries, w.entry)
	}
	return entries, nil
}

func (r *resumeRepo) loadProjects(ctx context.Context, workID int64) ([]domain.Project, error) {
	rows, err := r.store.Query(ctx, `SELECT
		COALESCE(title,''), COALESCE(description,''), COALESCE(technologies,''),
		COALESCE(link,''), COALESCE(start_date,''), COALESCE(end_date,'')
		FROM projects WHERE work_experience_id = ? ORDER BY sort_order`, workID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.Title, &p.Description, &p.Technologies, &p.Link, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *resumeRepo) loadEducation(ctx context.Context, resumeID int64) ([]domain.Education, error) {
	rows, err := r.store.Query(ctx, `SELECT
		COALESCE(institution,''), COALESCE(degree,''), COALESCE(field,''),
		COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(gpa,'')
		FROM education WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load education: %w", err)
	}
	defer rows.Close()

	var entries []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.Institution, &e.Degree, &e.Field, &e.StartDate, &e.EndDate, &e.GPA); err != nil {
			return nil, fmt.Errorf("failed to scan education entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *resumeRepo) loadSkills(ctx context.Context, resumeID int64) ([]domain.SkillCategory, error) {
	rows, err := r.store.Query(ctx,
		`SELECT id, COALESCE(category,''), COALESCE(bulleted,0)
		FROM skills WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	type skillRow struct {
		id  int64
		cat domain.SkillCategory
	}
	var collected []skillRow
	for rows.Next() {
		var s skillRow
		var bulleted int
		if err := rows.Scan(&s.id, &s.cat.Category, &bulleted); err != nil {
			return nil, fmt.Errorf("failed to scan skill category: %w", err)
		}
		s.cat.Bulleted = bulleted == 1
		collected = append(collected, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating skills: %w", err)
	}

	categories := make([]domain.SkillCategory, 0, len(collected))
	for _, s := range collected {
		if s.cat.Items, err = r.loadStrings(ctx,
			`SELECT COALESCE(name,'') FROM skill_items WHERE skill_id = ? ORDER BY sort_order`, s.id); err != nil {
			return nil, fmt.Errorf("failed to load skill items: %w", err)
		}
		categories = append(categories, s.cat)
	}
	return categories, nil
}

func (r *resumeRepo) loadLicenses(ctx context.Context, resumeID int64) ([]domain.License, error) {
	rows, err := r.store.Query(ctx, `SELECT
		COALESCE(name,''), COALESCE(issuing_org,''), COALESCE(issue_date,''),
		COALESCE(expiration_date,''), COALESCE(license_number,''), COALESCE(description,'')
		FROM licenses WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load licenses: %w", err)
	}
	defer rows.Close()

	var entries []domain.License
	for rows.Next() {
		var l domain.License
		if err := rows.Scan(&l.Name, &l.IssuingOrg, &l.IssueDate, &l.ExpirationDate,
			&l.LicenseNumber, &l.Description); err != nil {
			return nil, fmt.Errorf("failed to scan license: %w", err)
		}
		entries = append(entries, l)
	}
	return entries, rows.Err()
}

func (r *resumeRepo) loadCertifications(ctx context.Context, resumeID int64) ([]domain.Certification, error) {
	rows, err := r.store.Query(ctx, `SELECT
		COALESCE(name,''), COALESCE(issuing_org,''), COALESCE(date,''), COALESCE(credential_id,'')
		FROM certifications WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load certifications: %w", err)
	}
	defer rows.Close()

	var entries []domain.Certification
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.Name, &c.IssuingOrg, &c.Date, &c.CredentialID); err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

func (r *resumeRepo) loadInternships(ctx context.Context, resumeID int64) ([]domain.Internship, error) {
	rows, err := r.store.Query(ctx, `SELECT
		COALESCE(company,''), COALESCE(role,''), COALESCE(start_date,''),
		COALESCE(end_date,''), COALESCE(description,'')
		FROM internships WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load internships: %w", err)
	}
	defer rows.Close()

	var entries []domain.Internship
	for rows.Next() {
		var i domain.Internship
		if err := rows.Scan(&i.Company, &i.Role, &i.StartDate, &i.EndDate, &i.Description); err != nil {
			return nil, fmt.Errorf("failed to scan internship: %w", err)
		}
		entries = append(entries, i)
	}
	return entries, rows.Err()
}

func (r *resumeRepo) loadLanguages(ctx context.Context, resumeID int64) ([]domain.Language, error) {
	rows, err := r.store.Query(ctx,
		`SELECT COALESCE(language,''), COALESCE(proficiency,'')
		FROM languages WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load languages: %w", err)
	}
	defer rows.Close()

	var entries []domain.Language
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.Language, &l.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		entries = append(entries, l)
	}
	return entries, rows.Err()
}

func (r *resumeRepo) loadCustomSections(ctx context.Context, resumeID int64) ([]domain.CustomSection, error) {
	rows, err := r.store.Query(ctx,
		`SELECT id, COALESCE(title,'') FROM custom_sections WHERE resume_id = ? ORDER BY sort_order`, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom sections: %w", err)
	}
	defer rows.Close()

	type sectionRow struct {
		id      int64
		section domain.CustomSection
	}
	var collected []sectionRow
	for rows.Next() {
		var s sectionRow
		if err := rows.Scan(&s.id, &s.section.Title); err != nil {
			return nil, fmt.Errorf("failed to scan custom section: %w", err)
		}
		collected = append(collected, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating custom sections: %w", err)
	}

	sections := make([]domain.CustomSection, 0, len(collected))
	for _, s := range collected {
		if s.section.Items, err = r.loadStrings(ctx,
			`SELECT COALESCE(content,'') FROM custom_section_items WHERE custom_section_id = ? ORDER BY sort_order`,
			s.id); err != nil {
			return nil, fmt.Errorf("failed to load custom section items: %w", err)
		}
		sections = append(sections, s.section)
	}
	return sections, nil
}

// loadStrings collects a single ordered text column.
func (r *resumeRepo) loadStrings(ctx context.Context, query string, parentID int64) ([]string, error) {
	rows, err := r.store.Query(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
