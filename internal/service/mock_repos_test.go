package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/model"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock StructureRepository ──

type mockStructureRepo struct {
	sites        map[string]*model.Site
	departements map[string]*model.Departement
	services     map[string]*model.Service
	equipes      map[string]*model.Equipe
	postes       map[string]*model.Poste
	fonctions    map[string]*model.Fonction
}

func newMockStructureRepo() *mockStructureRepo {
	return &mockStructureRepo{
		sites:        make(map[string]*model.Site),
		departements: make(map[string]*model.Departement),
		services:     make(map[string]*model.Service),
		equipes:      make(map[string]*model.Equipe),
		postes:       make(map[string]*model.Poste),
		fonctions:    make(map[string]*model.Fonction),
	}
}

func (m *mockStructureRepo) CreateSite(_ context.Context, site *model.Site) error {
	if site.SiteID == "" {
		site.SiteID = "site-" + site.Code
	}
	m.sites[site.SiteID] = site
	return nil
}

func (m *mockStructureRepo) GetSiteByID(_ context.Context, id string) (*model.Site, error) {
	if s, ok := m.sites[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetSiteByCode(_ context.Context, code string) (*model.Site, error) {
	for _, s := range m.sites {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListSites(_ context.Context) ([]model.Site, error) {
	var result []model.Site
	for _, s := range m.sites {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStructureRepo) CreateDepartement(_ context.Context, dept *model.Departement) error {
	if dept.DepartementID == "" {
		dept.DepartementID = "dept-" + dept.Code
	}
	m.departements[dept.DepartementID] = dept
	return nil
}

func (m *mockStructureRepo) GetDepartementByID(_ context.Context, id string) (*model.Departement, error) {
	if d, ok := m.departements[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetDepartementByCode(_ context.Context, code string) (*model.Departement, error) {
	for _, d := range m.departements {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListDepartements(_ context.Context, siteID string) ([]model.Departement, error) {
	var result []model.Departement
	for _, d := range m.departements {
		if siteID != "" && d.SiteID != siteID {
			continue
		}
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockStructureRepo) CreateService(_ context.Context, svc *model.Service) error {
	if svc.ServiceID == "" {
		svc.ServiceID = "svc-" + svc.Code
	}
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockStructureRepo) GetServiceByID(_ context.Context, id string) (*model.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetServiceByCode(_ context.Context, code string) (*model.Service, error) {
	for _, s := range m.services {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListServices(_ context.Context, departementID string) ([]model.Service, error) {
	var result []model.Service
	for _, s := range m.services {
		if departementID != "" && s.DepartementID != departementID {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStructureRepo) CreateEquipe(_ context.Context, equipe *model.Equipe) error {
	if equipe.EquipeID == "" {
		equipe.EquipeID = "eq-" + equipe.Code
	}
	m.equipes[equipe.EquipeID] = equipe
	return nil
}

func (m *mockStructureRepo) GetEquipeByID(_ context.Context, id string) (*model.Equipe, error) {
	if e, ok := m.equipes[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetEquipeByCode(_ context.Context, code string) (*model.Equipe, error) {
	for _, e := range m.equipes {
		if e.Code == code {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListEquipes(_ context.Context, serviceID string) ([]model.Equipe, error) {
	var result []model.Equipe
	for _, e := range m.equipes {
		if serviceID != "" && e.ServiceID != serviceID {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockStructureRepo) CreatePoste(_ context.Context, poste *model.Poste) error {
	if poste.PosteID == "" {
		poste.PosteID = "poste-" + poste.Code
	}
	m.postes[poste.PosteID] = poste
	return nil
}

func (m *mockStructureRepo) GetPosteByID(_ context.Context, id string) (*model.Poste, error) {
	if p, ok := m.postes[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetPosteByCode(_ context.Context, code string) (*model.Poste, error) {
	for _, p := range m.postes {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListPostes(_ context.Context) ([]model.Poste, error) {
	var result []model.Poste
	for _, p := range m.postes {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockStructureRepo) CreateFonction(_ context.Context, fonction *model.Fonction) error {
	if fonction.FonctionID == "" {
		fonction.FonctionID = "fct-" + fonction.Code
	}
	m.fonctions[fonction.FonctionID] = fonction
	return nil
}

func (m *mockStructureRepo) GetFonctionByID(_ context.Context, id string) (*model.Fonction, error) {
	if f, ok := m.fonctions[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) GetFonctionByCode(_ context.Context, code string) (*model.Fonction, error) {
	for _, f := range m.fonctions {
		if f.Code == code {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStructureRepo) ListFonctions(_ context.Context) ([]model.Fonction, error) {
	var result []model.Fonction
	for _, f := range m.fonctions {
		result = append(result, *f)
	}
	return result, nil
}

// ── Mock EmployeRepository ──

type mockEmployeRepo struct {
	employes     map[string]*model.Employe
	affectations []model.Affectation
	idCounter    int
}

func newMockEmployeRepo() *mockEmployeRepo {
	return &mockEmployeRepo{employes: make(map[string]*model.Employe)}
}

func (m *mockEmployeRepo) CreateWithAffectation(_ context.Context, e *model.Employe, _ *model.InfosPerso, _ *model.Contact, aff *model.Affectation) error {
	if e.EmployeID == "" {
		m.idCounter++
		e.EmployeID = fmt.Sprintf("emp-%d", m.idCounter)
	}
	m.employes[e.EmployeID] = e
	aff.EmployeID = e.EmployeID
	if aff.AffectationID == "" {
		aff.AffectationID = fmt.Sprintf("aff-%d", len(m.affectations)+1)
	}
	m.affectations = append(m.affectations, *aff)
	return nil
}

func (m *mockEmployeRepo) GetByID(_ context.Context, id string) (*model.Employe, error) {
	if e, ok := m.employes[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeRepo) GetByMatricule(_ context.Context, matricule string) (*model.Employe, error) {
	for _, e := range m.employes {
		if e.Matricule == matricule {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeRepo) List(_ context.Context, filters *repository.EmployeFilters, offset, limit int) ([]model.Employe, int64, error) {
	var filtered []model.Employe
	for _, e := range m.employes {
		if filters.Statut != "" && e.Statut != filters.Statut {
			continue
		}
		if filters.SiteID != "" && e.SiteID != filters.SiteID {
			continue
		}
		if filters.DepartementID != "" && e.DepartementID != filters.DepartementID {
			continue
		}
		filtered = append(filtered, *e)
	}
	total := int64(len(filtered))
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockEmployeRepo) Update(_ context.Context, e *model.Employe, _ *model.InfosPerso, _ *model.Contact) error {
	if _, ok := m.employes[e.EmployeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.employes[e.EmployeID] = e
	return nil
}

func (m *mockEmployeRepo) UpdateWithAffectation(_ context.Context, e *model.Employe, _ *model.InfosPerso, _ *model.Contact, aff *model.Affectation, motif string) error {
	if _, ok := m.employes[e.EmployeID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := m.closeOpenAffectation(e.EmployeID, aff.DateDebut.AddDate(0, 0, -1), motif); err != nil {
		return err
	}
	m.employes[e.EmployeID] = e
	if aff.AffectationID == "" {
		aff.AffectationID = fmt.Sprintf("aff-%d", len(m.affectations)+1)
	}
	m.affectations = append(m.affectations, *aff)
	return nil
}

func (m *mockEmployeRepo) Archive(_ context.Context, id string, closeDate time.Time, archivedBy string) (int64, error) {
	e, ok := m.employes[id]
	if !ok || e.Statut == model.StatutLicencie {
		return 0, nil
	}
	e.Statut = model.StatutLicencie
	e.UserID = nil
	e.UpdatedBy = &archivedBy
	_ = m.closeOpenAffectation(id, closeDate, "Archivage")
	return 1, nil
}

func (m *mockEmployeRepo) GetOpenAffectation(_ context.Context, employeID string) (*model.Affectation, error) {
	for i := range m.affectations {
		a := &m.affectations[i]
		if a.EmployeID == employeID && a.DateFin == nil {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeRepo) ListAffectations(_ context.Context, employeID string) ([]model.Affectation, error) {
	var result []model.Affectation
	for _, a := range m.affectations {
		if a.EmployeID == employeID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockEmployeRepo) closeOpenAffectation(employeID string, closeDate time.Time, motif string) error {
	for i := range m.affectations {
		a := &m.affectations[i]
		if a.EmployeID == employeID && a.DateFin == nil {
			d := closeDate
			a.DateFin = &d
			if a.Commentaire != "" {
				a.Commentaire += "\n"
			}
			a.Commentaire += "Clôture: " + motif
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock ContratRepository ──

type mockContratRepo struct {
	contrats  map[string]*model.Contrat
	idCounter int
}

func newMockContratRepo() *mockContratRepo {
	return &mockContratRepo{contrats: make(map[string]*model.Contrat)}
}

func (m *mockContratRepo) Create(_ context.Context, contrat *model.Contrat) error {
	if contrat.ContratID == "" {
		m.idCounter++
		contrat.ContratID = fmt.Sprintf("contrat-%d", m.idCounter)
	}
	m.contrats[contrat.ContratID] = contrat
	return nil
}

func (m *mockContratRepo) GetByID(_ context.Context, id string) (*model.Contrat, error) {
	if c, ok := m.contrats[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContratRepo) GetActifNonAvenant(_ context.Context, employeID string) (*model.Contrat, error) {
	for _, c := range m.contrats {
		if c.EmployeID == employeID && c.Statut == model.ContratActif && !c.IsAvenant {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContratRepo) ListByEmploye(_ context.Context, employeID string) ([]model.Contrat, error) {
	var result []model.Contrat
	for _, c := range m.contrats {
		if c.EmployeID == employeID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// ── Mock SanctionRepository ──

type mockSanctionRepo struct {
	sanctions []model.Sanction
	employes  *mockEmployeRepo
	contrats  *mockContratRepo
}

func newMockSanctionRepo(employes *mockEmployeRepo, contrats *mockContratRepo) *mockSanctionRepo {
	return &mockSanctionRepo{employes: employes, contrats: contrats}
}

func (m *mockSanctionRepo) Create(_ context.Context, sanction *model.Sanction) error {
	if sanction.SanctionID == "" {
		sanction.SanctionID = fmt.Sprintf("sanction-%d", len(m.sanctions)+1)
	}
	m.sanctions = append(m.sanctions, *sanction)
	return nil
}

func (m *mockSanctionRepo) CreateLicenciement(ctx context.Context, sanction *model.Sanction, dateFin time.Time) error {
	if err := m.Create(ctx, sanction); err != nil {
		return err
	}
	if e, ok := m.employes.employes[sanction.EmployeID]; ok {
		e.Statut = model.StatutLicencie
	}
	for _, c := range m.contrats.contrats {
		if c.EmployeID == sanction.EmployeID && c.Statut == model.ContratActif && !c.IsAvenant {
			c.Statut = model.ContratTermine
			d := dateFin
			c.DateFinReelle = &d
		}
	}
	return nil
}

func (m *mockSanctionRepo) ListByEmploye(_ context.Context, employeID string) ([]model.Sanction, error) {
	var result []model.Sanction
	for _, s := range m.sanctions {
		if s.EmployeID == employeID {
			result = append(result, s)
		}
	}
	return result, nil
}

// ── Mock MedicalRepository ──

type mockMedicalRepo struct {
	visites   []model.VisiteMedicale
	accidents []model.AccidentTravail
}

func newMockMedicalRepo() *mockMedicalRepo {
	return &mockMedicalRepo{}
}

func (m *mockMedicalRepo) CreateVisite(_ context.Context, visite *model.VisiteMedicale) error {
	if visite.VisiteID == "" {
		visite.VisiteID = fmt.Sprintf("visite-%d", len(m.visites)+1)
	}
	m.visites = append(m.visites, *visite)
	return nil
}

func (m *mockMedicalRepo) ListVisitesByEmploye(_ context.Context, employeID string) ([]model.VisiteMedicale, error) {
	var result []model.VisiteMedicale
	for _, v := range m.visites {
		if v.EmployeID == employeID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (m *mockMedicalRepo) CreateAccident(_ context.Context, accident *model.AccidentTravail) error {
	if accident.AccidentID == "" {
		accident.AccidentID = fmt.Sprintf("accident-%d", len(m.accidents)+1)
	}
	m.accidents = append(m.accidents, *accident)
	return nil
}

func (m *mockMedicalRepo) ListAccidentsByEmploye(_ context.Context, employeID string) ([]model.AccidentTravail, error) {
	var result []model.AccidentTravail
	for _, a := range m.accidents {
		if a.EmployeID == employeID {
			result = append(result, a)
		}
	}
	return result, nil
}

// ── Mock PointageRepository ──

type mockPointageRepo struct {
	pointages map[string]*model.Pointage
	idCounter int
}

func newMockPointageRepo() *mockPointageRepo {
	return &mockPointageRepo{pointages: make(map[string]*model.Pointage)}
}

func pointageKey(employeID string, date time.Time) string {
	return employeID + "|" + date.Format("2006-01-02")
}

func (m *mockPointageRepo) Create(_ context.Context, pointage *model.Pointage) error {
	if pointage.PointageID == "" {
		m.idCounter++
		pointage.PointageID = fmt.Sprintf("ptg-%d", m.idCounter)
	}
	m.pointages[pointageKey(pointage.EmployeID, pointage.Date)] = pointage
	return nil
}

func (m *mockPointageRepo) GetByEmployeAndDate(_ context.Context, employeID string, date time.Time) (*model.Pointage, error) {
	if p, ok := m.pointages[pointageKey(employeID, date)]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPointageRepo) UpdateSortie(_ context.Context, pointage *model.Pointage) error {
	key := pointageKey(pointage.EmployeID, pointage.Date)
	if _, ok := m.pointages[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.pointages[key] = pointage
	return nil
}

func (m *mockPointageRepo) ListByEmployeMois(_ context.Context, employeID string, debut, fin time.Time) ([]model.Pointage, error) {
	var result []model.Pointage
	for _, p := range m.pointages {
		if p.EmployeID == employeID && !p.Date.Before(debut) && p.Date.Before(fin) {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ── Mock JourFerieRepository ──

type mockJourFerieRepo struct {
	jours []model.JourFerie
}

func newMockJourFerieRepo() *mockJourFerieRepo {
	return &mockJourFerieRepo{}
}

func (m *mockJourFerieRepo) Create(_ context.Context, jour *model.JourFerie) error {
	if jour.JourFerieID == "" {
		jour.JourFerieID = fmt.Sprintf("jf-%d", len(m.jours)+1)
	}
	m.jours = append(m.jours, *jour)
	return nil
}

func (m *mockJourFerieRepo) GetByDate(_ context.Context, date time.Time) (*model.JourFerie, error) {
	for i := range m.jours {
		if m.jours[i].Date.Equal(date) {
			return &m.jours[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJourFerieRepo) FindForDate(_ context.Context, date time.Time) (*model.JourFerie, error) {
	for i := range m.jours {
		if m.jours[i].CouvreDate(date) {
			return &m.jours[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockJourFerieRepo) List(_ context.Context) ([]model.JourFerie, error) {
	return append([]model.JourFerie(nil), m.jours...), nil
}

func (m *mockJourFerieRepo) Deactivate(_ context.Context, id string, updatedBy string) (int64, error) {
	for i := range m.jours {
		if m.jours[i].JourFerieID == id && m.jours[i].Actif {
			m.jours[i].Actif = false
			m.jours[i].UpdatedBy = &updatedBy
			return 1, nil
		}
	}
	return 0, nil
}

// ── Mock CongeRepository ──

type mockCongeRepo struct {
	demandes  map[string]*model.DemandeConge
	idCounter int
}

func newMockCongeRepo() *mockCongeRepo {
	return &mockCongeRepo{demandes: make(map[string]*model.DemandeConge)}
}

func (m *mockCongeRepo) CreateWithValidation(_ context.Context, demande *model.DemandeConge, validation *model.ValidationConge) error {
	if demande.DemandeID == "" {
		m.idCounter++
		demande.DemandeID = fmt.Sprintf("demande-%d", m.idCounter)
	}
	validation.DemandeID = demande.DemandeID
	if validation.ValidationID == "" {
		validation.ValidationID = demande.DemandeID + "-v1"
	}
	cp := *demande
	cp.Validations = []model.ValidationConge{*validation}
	m.demandes[demande.DemandeID] = &cp
	return nil
}

func (m *mockCongeRepo) GetByID(_ context.Context, id string) (*model.DemandeConge, error) {
	if d, ok := m.demandes[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCongeRepo) HasOverlap(_ context.Context, employeID string, debut, fin time.Time) (bool, error) {
	for _, d := range m.demandes {
		if d.EmployeID != employeID {
			continue
		}
		blocking := false
		for _, st := range model.StatutsCongesBloquants {
			if d.StatutActuel == st {
				blocking = true
				break
			}
		}
		if !blocking {
			continue
		}
		if !d.DateDebut.After(fin) && !d.DateFin.Before(debut) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCongeRepo) ListByEmploye(_ context.Context, employeID string) ([]model.DemandeConge, error) {
	var result []model.DemandeConge
	for _, d := range m.demandes {
		if d.EmployeID == employeID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockCongeRepo) AppendValidation(_ context.Context, demandeID string, validation *model.ValidationConge, nouveauStatut string) error {
	d, ok := m.demandes[demandeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	validation.DemandeID = demandeID
	if validation.ValidationID == "" {
		validation.ValidationID = fmt.Sprintf("%s-v%d", demandeID, len(d.Validations)+1)
	}
	d.Validations = append(d.Validations, *validation)
	d.StatutActuel = nouveauStatut
	return nil
}

// ── Mock DocumentRepository ──

type mockDocumentRepo struct {
	documents []model.Document
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{}
}

func (m *mockDocumentRepo) Create(_ context.Context, doc *model.Document) error {
	if doc.DocumentID == "" {
		doc.DocumentID = fmt.Sprintf("doc-%d", len(m.documents)+1)
	}
	m.documents = append(m.documents, *doc)
	return nil
}

func (m *mockDocumentRepo) List(_ context.Context, offset, limit int) ([]model.Document, int64, error) {
	total := int64(len(m.documents))
	if offset >= len(m.documents) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(m.documents) {
		end = len(m.documents)
	}
	return m.documents[offset:end], total, nil
}

// ── Mock AlerteRepository ──

type mockAlerteRepo struct {
	alertes []model.Alerte
}

func newMockAlerteRepo() *mockAlerteRepo {
	return &mockAlerteRepo{}
}

func (m *mockAlerteRepo) Create(_ context.Context, alerte *model.Alerte) error {
	if alerte.AlerteID == "" {
		alerte.AlerteID = fmt.Sprintf("alerte-%d", len(m.alertes)+1)
	}
	m.alertes = append(m.alertes, *alerte)
	return nil
}

func (m *mockAlerteRepo) List(_ context.Context, nonVuesSeulement bool) ([]model.Alerte, error) {
	var result []model.Alerte
	for _, a := range m.alertes {
		if nonVuesSeulement && a.Vue {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAlerteRepo) MarkSeen(_ context.Context, id string) (int64, error) {
	for i := range m.alertes {
		if m.alertes[i].AlerteID == id {
			m.alertes[i].Vue = true
			return 1, nil
		}
	}
	return 0, nil
}

// ── test wiring ──

// newTestRepository assembles a Repository backed entirely by mocks.
func newTestRepository() *repository.Repository {
	employes := newMockEmployeRepo()
	contrats := newMockContratRepo()
	return &repository.Repository{
		User:      newMockUserRepo(),
		Structure: newMockStructureRepo(),
		Employe:   employes,
		Contrat:   contrats,
		Sanction:  newMockSanctionRepo(employes, contrats),
		Medical:   newMockMedicalRepo(),
		Pointage:  newMockPointageRepo(),
		JourFerie: newMockJourFerieRepo(),
		Conge:     newMockCongeRepo(),
		Document:  newMockDocumentRepo(),
		Alerte:    newMockAlerteRepo(),
	}
}

// seedStructure inserts a minimal hierarchy and returns the IDs
// (site, departement, service, poste).
func seedStructure(repo *repository.Repository) (string, string, string, string) {
	ctx := context.Background()
	site := &model.Site{Code: "DKR", Nom: "Dakar"}
	_ = repo.Structure.CreateSite(ctx, site)
	dept := &model.Departement{SiteID: site.SiteID, Code: "PROD", Nom: "Production"}
	_ = repo.Structure.CreateDepartement(ctx, dept)
	svc := &model.Service{DepartementID: dept.DepartementID, Code: "MAINT", Nom: "Maintenance"}
	_ = repo.Structure.CreateService(ctx, svc)
	poste := &model.Poste{Code: "TECH", Intitule: "Technicien"}
	_ = repo.Structure.CreatePoste(ctx, poste)
	return site.SiteID, dept.DepartementID, svc.ServiceID, poste.PosteID
}
