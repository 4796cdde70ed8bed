package graph

// Schema is the GraphQL type system served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: Int!
		name: String!
		email: String!
		reviews: [Review!]!
	}

	type Game {
		id: Int!
		name: String!
		description: String!
		price: Int!
		platform: [String!]!
		reviews: [Review!]!
	}

	type Review {
		id: Int!
		rating: Int!
		comment: String!
		user: User!
		game: Game!
	}

	type Query {
		users: [User!]!
		user(id: Int!): User
		games: [Game!]!
		game(id: Int!): Game
		reviews: [Review!]!
		review(id: Int!): Review
	}

	input EditGameInput {
		name: String
		description: String
		price: Int
		platform: [String!]
	}

	type Mutation {
		addUser(name: String!, email: String!): User!
		addGame(name: String!, description: String!, price: Int!, platform: [String!]!): Game!
		addReview(rating: Int!, comment: String!, gameId: Int!, userId: Int!): Review!
		deleteUser(id: Int!): User!
		deleteGame(id: Int!): Game!
		deleteReview(id: Int!): Review!
		updateGame(id: Int!, input: EditGameInput!): Game!
	}
`
