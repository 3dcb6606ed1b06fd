package user

// Fixtures returns the seed users.
func Fixtures() []User {
	return []User{
		{ID: "u1", Name: "Alice Admin", Email: "alice@gloovup.com", Role: RoleAdmin, IsActive: true, Department: "IT", LastLogin: "2023-10-25T08:30:00Z", CreatedAt: "2023-01-15"},
		{ID: "u2", Name: "Bob Builder", Email: "bob@gloovup.com", Role: RoleManager, IsActive: true, Department: "Engineering", LastLogin: "2023-10-24T17:00:00Z", CreatedAt: "2023-02-10"},
		{ID: "u3", Name: "Charlie Client", Email: "charlie@acme.com", Role: RoleClient, IsActive: true, Department: "External", LastLogin: "2023-10-20T09:15:00Z", CreatedAt: "2023-03-05"},
		{ID: "u4", Name: "Dave Designer", Email: "dave@gloovup.com", Role: RoleEmployee, IsActive: false, Department: "Design", LastLogin: "2023-09-15T10:00:00Z", CreatedAt: "2023-04-20"},
		{ID: "u5", Name: "Eve Engineer", Email: "eve@gloovup.com", Role: RoleEmployee, IsActive: true, Department: "Engineering", LastLogin: "2023-10-25T09:00:00Z", CreatedAt: "2023-05-12"},
		{ID: "u6", Name: "Frank Former", Email: "frank@gloovup.com", Role: RoleEmployee, IsActive: false, IsArchived: true, Department: "Sales", LastLogin: "2023-01-01T00:00:00Z", CreatedAt: "2022-11-30"},
		{ID: "u7", Name: "Grace Guest", Email: "grace@partner.com", Role: RoleClient, IsActive: true, Department: "External", LastLogin: "2023-10-21T11:00:00Z", CreatedAt: "2023-06-15"},
		{ID: "u8", Name: "Harry HR", Email: "harry@gloovup.com", Role: RoleManager, IsActive: true, Department: "HR", LastLogin: "2023-10-25T08:00:00Z", CreatedAt: "2023-02-28"},
	}
}
