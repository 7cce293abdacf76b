package banking

import (
	"fmt"

	"github.com/kbukum/authzkit/rebac"
)

// Graph wraps a store with builders for banking entities. Builders construct
// fully formed entities and hand them to the store; they carry no policy.
type Graph struct {
	store *rebac.Store
}

// NewGraph creates a builder over the given store.
func NewGraph(store *rebac.Store) *Graph {
	return &Graph{store: store}
}

// Store returns the underlying store.
func (g *Graph) Store() *rebac.Store {
	return g.store
}

// AddUser adds a user. Role is descriptive metadata only and never gates
// permissions.
func (g *Graph) AddUser(id, name, role string) {
	g.store.Put(rebac.NewEntity(rebac.TypeUser, id).
		WithName(name).
		SetAttr("role", role))
}

// AddBank adds a root container with admin and manager relation lists.
func (g *Graph) AddBank(id, name string, admins, managers []string) {
	g.store.Put(rebac.NewEntity(TypeBank, id).
		WithName(name).
		AddRelation(RelAdmin, admins...).
		AddRelation(RelManager, managers...))
}

// AddBranch adds a mid-tier container under a bank.
func (g *Graph) AddBranch(id, name, bankID, managerID string, tellers []string) {
	g.store.Put(rebac.NewEntity(TypeBranch, id).
		WithName(name).
		SetParent(RelParentBank, rebac.NewRef(TypeBank, bankID)).
		AddRelation(RelManager, managerID).
		AddRelation(RelTeller, tellers...))
}

// Account describes an account to add.
type Account struct {
	ID            string
	AccountNumber string
	BranchID      string
	Owners        []string
	CoOwners      []string
	Balance       float64
	AccountType   string
}

// AddAccount adds a leaf account under a branch. The rendered statement is
// the account's gated content.
func (g *Graph) AddAccount(a Account) {
	g.store.Put(rebac.NewEntity(TypeAccount, a.ID).
		WithName(a.AccountNumber).
		SetParent(RelParentBranch, rebac.NewRef(TypeBranch, a.BranchID)).
		AddRelation(RelOwner, a.Owners...).
		AddRelation(RelCoOwner, a.CoOwners...).
		SetAttr("account_number", a.AccountNumber).
		SetAttr("account_type", a.AccountType).
		SetAttr("balance", fmt.Sprintf("%.2f", a.Balance)).
		WithContent(fmt.Sprintf("Account %s (%s): balance %.2f", a.AccountNumber, a.AccountType, a.Balance)))
}

// Loan describes a loan to add.
type Loan struct {
	ID           string
	BranchID     string
	BorrowerID   string
	CoBorrowers  []string
	OfficerID    string
	Amount       float64
	Status       string
	InterestRate float64
}

// AddLoan adds a leaf loan under a branch.
func (g *Graph) AddLoan(l Loan) {
	g.store.Put(rebac.NewEntity(TypeLoan, l.ID).
		SetParent(RelParentBranch, rebac.NewRef(TypeBranch, l.BranchID)).
		AddRelation(RelBorrower, l.BorrowerID).
		AddRelation(RelCoBorrower, l.CoBorrowers...).
		AddRelation(RelLoanOfficer, l.OfficerID).
		SetAttr("amount", fmt.Sprintf("%.2f", l.Amount)).
		SetAttr("status", l.Status).
		SetAttr("interest_rate", fmt.Sprintf("%.2f", l.InterestRate)))
}
