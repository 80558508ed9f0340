package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User      UserRepository
	Structure StructureRepository
	Employe   EmployeRepository
	Contrat   ContratRepository
	Sanction  SanctionRepository
	Medical   MedicalRepository
	Pointage  PointageRepository
	JourFerie JourFerieRepository
	Conge     CongeRepository
	Document  DocumentRepository
	Alerte    AlerteRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:      NewUserRepo(db),
		Structure: NewStructureRepo(db),
		Employe:   NewEmployeRepo(db),
		Contrat:   NewContratRepo(db),
		Sanction:  NewSanctionRepo(db),
		Medical:   NewMedicalRepo(db),
		Pointage:  NewPointageRepo(db),
		JourFerie: NewJourFerieRepo(db),
		Conge:     NewCongeRepo(db),
		Document:  NewDocumentRepo(db),
		Alerte:    NewAlerteRepo(db),
	}
}
