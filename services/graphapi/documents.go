package graphapi

// GraphQL documents, mirroring the server schema.
const (
	loginDoc = `
mutation Login($input: LoginInput!) {
  login(input: $input) {
    token
    employee {
      id
      email
      name
      role
    }
  }
}`

	signUpDoc = `
mutation SignUp($input: SignUpInput!) {
  signUp(input: $input) {
    token
    employee {
      id
      email
      name
      role
    }
  }
}`

	employeesPageDoc = `
query EmployeesPage($filter: EmployeeFilter, $sort: EmployeeSort, $page: Int!, $pageSize: Int!) {
  employeesPage(filter: $filter, sort: $sort, page: $page, pageSize: $pageSize) {
    items {
      id
      name
      email
      role
      teachingAssignments {
        className
        subjectName
      }
      attendanceSummary {
        percentage
      }
    }
    totalCount
    page
    pageSize
  }
}`

	employeeByIDDoc = `
query EmployeeById($id: ID!) {
  employee(id: $id) {
    id
    name
    email
    role
    dateOfBirth
    teachingAssignments {
      className
      subjectName
    }
    attendanceSummary {
      percentage
    }
  }
}`

	updateEmployeeDoc = `
mutation UpdateEmployee($id: ID!, $input: UpdateEmployeeInput!) {
  updateEmployee(id: $id, input: $input) {
    id
    name
    email
    role
    teachingAssignments {
      className
      subjectName
    }
    attendanceSummary {
      percentage
    }
  }
}`
)
