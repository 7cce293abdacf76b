package banking

import "github.com/kbukum/authzkit/rebac"

// Seed populates the store with the reference banking graph: one bank, one
// branch, two accounts and a pending loan.
func Seed(store *rebac.Store) {
	g := NewGraph(store)

	g.AddUser("alice", "Alice Johnson", "customer")
	g.AddUser("bob", "Bob Smith", "customer")
	g.AddUser("charlie", "Charlie Brown", "teller")
	g.AddUser("diana", "Diana Prince", "manager")
	g.AddUser("eve", "Eve Adams", "loan_officer")
	g.AddUser("frank", "Frank Miller", "admin")

	g.AddBank("bank1", "First National Bank", []string{"frank"}, []string{"diana"})
	g.AddBranch("branch1", "Downtown Branch", "bank1", "diana", []string{"charlie"})

	g.AddAccount(Account{
		ID: "acc1", AccountNumber: "1001", BranchID: "branch1",
		Owners: []string{"alice"}, Balance: 5000, AccountType: "checking",
	})
	g.AddAccount(Account{
		ID: "acc2", AccountNumber: "1002", BranchID: "branch1",
		Owners: []string{"bob"}, CoOwners: []string{"alice"},
		Balance: 3000, AccountType: "savings",
	})

	g.AddLoan(Loan{
		ID: "loan1", BranchID: "branch1", BorrowerID: "alice",
		CoBorrowers: []string{"bob"}, OfficerID: "eve",
		Amount: 50000, Status: "pending", InterestRate: 3.5,
	})
}
