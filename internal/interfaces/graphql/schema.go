package graphql

// Schema es el SDL completo de la API. Los timestamps viajan como strings
// RFC3339 y las cantidades como Float; stockStatus y totalValue son campos
// derivados que se calculan en cada lectura.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	enum Role {
		ADMIN
		STAFF
	}

	enum Unit {
		KG
		PCS
		LITERS
		GRAMS
		ML
	}

	enum Category {
		VEGETABLES
		FRUITS
		MEAT
		SEAFOOD
		DAIRY
		GRAINS
		SPICES
		BEVERAGES
		CONDIMENTS
		OTHER
	}

	enum StockStatus {
		SAFE
		LOW
		CRITICAL
	}

	enum MovementType {
		IN
		OUT
		ADJUSTMENT
	}

	type User {
		id: ID!
		email: String!
		role: Role!
		displayName: String
		createdAt: String!
	}

	type Supplier {
		id: ID!
		name: String!
		contact: String
		email: String
		phone: String
		address: String
		createdAt: String!
		updatedAt: String!
	}

	type Ingredient {
		id: ID!
		name: String!
		category: Category!
		unit: Unit!
		stock: Float!
		lowStockThreshold: Float!
		costPerUnit: Float!
		supplierId: ID
		supplier: Supplier
		expiryDate: String
		archived: Boolean!
		stockStatus: StockStatus!
		totalValue: Float!
		createdAt: String!
		updatedAt: String!
	}

	type StockMovement {
		id: ID!
		ingredientId: ID!
		ingredient: Ingredient
		type: MovementType!
		quantity: Float!
		note: String
		performedBy: ID!
		performedByUser: User
		createdAt: String!
	}

	type DashboardStats {
		totalInventoryValue: Float!
		lowStockCount: Int!
		expiringCount: Int!
		totalIngredients: Int!
		recentMovements: [StockMovement!]!
	}

	input CreateIngredientInput {
		name: String!
		category: Category!
		unit: Unit!
		stock: Float!
		lowStockThreshold: Float!
		costPerUnit: Float!
		supplierId: ID
		expiryDate: String
	}

	input UpdateIngredientInput {
		name: String
		category: Category
		unit: Unit
		stock: Float
		lowStockThreshold: Float
		costPerUnit: Float
		supplierId: ID
		expiryDate: String
	}

	input RecordStockMovementInput {
		ingredientId: ID!
		type: MovementType!
		quantity: Float!
		note: String
	}

	input CreateSupplierInput {
		name: String!
		contact: String
		email: String
		phone: String
		address: String
	}

	input UpdateSupplierInput {
		name: String
		contact: String
		email: String
		phone: String
		address: String
	}

	type Query {
		me: User

		ingredients(archived: Boolean, category: Category, search: String): [Ingredient!]!
		ingredient(id: ID!): Ingredient
		lowStockIngredients: [Ingredient!]!
		expiringIngredients(days: Int): [Ingredient!]!

		stockMovements(ingredientId: ID, limit: Int): [StockMovement!]!

		suppliers: [Supplier!]!
		supplier(id: ID!): Supplier

		dashboardStats: DashboardStats!
	}

	type Mutation {
		createIngredient(input: CreateIngredientInput!): Ingredient!
		updateIngredient(id: ID!, input: UpdateIngredientInput!): Ingredient!
		archiveIngredient(id: ID!): Ingredient!

		recordStockMovement(input: RecordStockMovementInput!): StockMovement!

		createSupplier(input: CreateSupplierInput!): Supplier!
		updateSupplier(id: ID!, input: UpdateSupplierInput!): Supplier!
	}
`
