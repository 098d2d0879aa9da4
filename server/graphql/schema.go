// Package graphql holds the SDL schema served by the api server. The schema
// is hand-written; server startup parses it against the resolver tree and
// panics on drift.
package graphql

// GetGQLSchema returns the schema definition for the social-graph API.
func GetGQLSchema() string {
	return `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		user(id: ID!): User!
		users: [User!]!
		post(id: ID!): Post!
		posts: [Post!]!
		profile(id: ID!): Profile!
		profiles: [Profile!]!
		memberType(id: ID!): MemberType!
		memberTypes: [MemberType!]!
		userOverview(id: ID!): UserOverview!
		userOverviews: [UserOverview!]!
		subscriptionView(id: ID!): SubscriptionView!
		subscriptionViews: [SubscriptionView!]!
	}

	type Mutation {
		createUser(input: CreateUserInput!): User!
		updateUser(id: ID!, input: UpdateUserInput!): User!
		deleteUser(id: ID!): User!
		createProfile(input: CreateProfileInput!): Profile!
		updateProfile(id: ID!, input: UpdateProfileInput!): Profile!
		deleteProfile(id: ID!): Profile!
		createPost(input: CreatePostInput!): Post!
		updatePost(id: ID!, input: UpdatePostInput!): Post!
		deletePost(id: ID!): Post!
		updateMemberType(id: ID!, input: UpdateMemberTypeInput!): MemberType!
		subscribeTo(followerId: ID!, targetId: ID!): User!
		unsubscribeFrom(followerId: ID!, targetId: ID!): User!
	}

	type User {
		id: ID!
		firstName: String!
		lastName: String!
		email: String!
		subscribedToUserIds: [ID!]!
	}

	type Profile {
		id: ID!
		avatar: String!
		sex: String!
		birthday: Int!
		country: String!
		street: String!
		city: String!
		memberTypeId: ID!
		userId: ID!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		userId: ID!
	}

	type MemberType {
		id: ID!
		discount: Int!
		monthPostsLimit: Int!
	}

	type UserOverview {
		user: User!
		profile: Profile
		posts: [Post!]!
		memberType: MemberType
	}

	type SubscriptionView {
		user: User!
		profile: Profile
		posts: [Post!]!
		memberType: MemberType
		followerIds: [ID!]!
		followingIds: [ID!]!
	}

	input CreateUserInput {
		firstName: String!
		lastName: String!
		email: String!
	}

	input UpdateUserInput {
		firstName: String
		lastName: String
		email: String
	}

	input CreateProfileInput {
		avatar: String!
		sex: String!
		birthday: Int!
		country: String!
		street: String!
		city: String!
		memberTypeId: String!
		userId: String!
	}

	input UpdateProfileInput {
		avatar: String
		sex: String
		birthday: Int
		country: String
		street: String
		city: String
		memberTypeId: String
	}

	input CreatePostInput {
		title: String!
		content: String!
		userId: String!
	}

	input UpdatePostInput {
		title: String
		content: String
	}

	input UpdateMemberTypeInput {
		discount: Int
		monthPostsLimit: Int
	}
	`
}
