// Package graph builds the GraphQL schema over the service layer.
// Field resolvers consult the authorization gate before materializing
// gated values; a denied field yields a field-level error while sibling
// fields still resolve.
package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/kwhite/taskboard/internal/authz"
	"github.com/kwhite/taskboard/internal/domain"
	"github.com/kwhite/taskboard/internal/service"
)

type builder struct {
	services *service.Services
	gate     *authz.Gate

	taskStatusEnum   *graphql.Enum
	taskSizeEnum     *graphql.Enum
	taskPriorityEnum *graphql.Enum

	userType    *graphql.Object
	taskType    *graphql.Object
	commentType *graphql.Object
	signInType  *graphql.Object
}

// NewSchema builds the executable schema.
func NewSchema(services *service.Services, gate *authz.Gate) (graphql.Schema, error) {
	b := &builder{services: services, gate: gate}
	b.defineEnums()
	b.defineTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
}

func (b *builder) defineEnums() {
	b.taskStatusEnum = graphql.NewEnum(graphql.EnumConfig{
		Name:        "TaskStatus",
		Description: "The current status of a task.",
		Values: graphql.EnumValueConfigMap{
			"OPEN":        {Value: domain.TaskStatusOpen},
			"IN_PROGRESS": {Value: domain.TaskStatusInProgress},
			"BLOCKED":     {Value: domain.TaskStatusBlocked},
			"CLOSED":      {Value: domain.TaskStatusClosed},
		},
	})

	b.taskSizeEnum = graphql.NewEnum(graphql.EnumConfig{
		Name:        "TaskSize",
		Description: "The approximate size of a task.",
		Values: graphql.EnumValueConfigMap{
			"XS": {Value: domain.TaskSizeXS},
			"S":  {Value: domain.TaskSizeS},
			"M":  {Value: domain.TaskSizeM},
			"L":  {Value: domain.TaskSizeL},
			"XL": {Value: domain.TaskSizeXL},
		},
	})

	b.taskPriorityEnum = graphql.NewEnum(graphql.EnumConfig{
		Name:        "TaskPriority",
		Description: "A task's priority.",
		Values: graphql.EnumValueConfigMap{
			"LOW":    {Value: domain.TaskPriorityLow},
			"MEDIUM": {Value: domain.TaskPriorityMedium},
			"HIGH":   {Value: domain.TaskPriorityHigh},
		},
	})
}

func (b *builder) defineTypes() {
	b.userType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A registered user.",
		Fields:      graphql.FieldsThunk(func() graphql.Fields { return b.userFields() }),
	})

	b.taskType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Task",
		Description: "A tracked unit of work.",
		Fields:      graphql.FieldsThunk(func() graphql.Fields { return b.taskFields() }),
	})

	b.commentType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "Comment",
		Description: "A comment made by a user.",
		Fields:      graphql.FieldsThunk(func() graphql.Fields { return b.commentFields() }),
	})

	b.signInType = graphql.NewObject(graphql.ObjectConfig{
		Name:        "SignInResult",
		Description: "The result of a successful sign-in.",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "An authentication token.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*signInPayload).Token, nil
				},
			},
			"viewer": &graphql.Field{
				Type:        b.userType,
				Description: "The signed-in user.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*signInPayload).Viewer, nil
				},
			},
		},
	})
}

func (b *builder) userFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.ID),
			Description: "This user's unique identifier.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).ID.String(), nil
			},
		},
		"displayName": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "This user's display name.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).DisplayName, nil
			},
		},
		"email": &graphql.Field{
			Type:        graphql.String,
			Description: "This user's email address.",
			Resolve: b.authorized("User", "email", func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).Email, nil
			}),
		},
		"phoneNumber": &graphql.Field{
			Type:        graphql.String,
			Description: "This user's phone number.",
			Resolve: b.authorized("User", "phoneNumber", func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).PhoneNumber, nil
			}),
		},
		"roles": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
			Description: "The roles assigned to this user.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				user := p.Source.(*domain.User)
				return b.services.User.ListRoles(p.Context, user.ID)
			},
		},
		"tasks": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.taskType))),
			Description: "The tasks assigned to this user.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				user := p.Source.(*domain.User)
				return b.services.Task.ListTasks(p.Context, &user.ID)
			},
		},
		"comments": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.commentType))),
			Description: "The comments made by this user.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				user := p.Source.(*domain.User)
				return b.services.Comment.ListComments(p.Context, &user.ID, nil)
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.User).UpdatedAt, nil
			},
		},
	}
}

func (b *builder) taskFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Int),
			Description: "This task's unique identifier.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).ID, nil
			},
		},
		"title": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "This task's title.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).Title, nil
			},
		},
		"content": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "This task's content.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).Content, nil
			},
		},
		"status": &graphql.Field{
			Type:        graphql.NewNonNull(b.taskStatusEnum),
			Description: "The current status of this task.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).Status, nil
			},
		},
		"size": &graphql.Field{
			Type:        graphql.NewNonNull(b.taskSizeEnum),
			Description: "The approximate size of this task.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).Size, nil
			},
		},
		"priority": &graphql.Field{
			Type:        graphql.NewNonNull(b.taskPriorityEnum),
			Description: "This task's priority.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).Priority, nil
			},
		},
		"owner": &graphql.Field{
			Type:        b.userType,
			Description: "The user this task is currently assigned to.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				task := p.Source.(*domain.Task)
				if task.OwnerID == nil {
					return nil, nil
				}
				return b.services.User.GetUser(p.Context, *task.OwnerID)
			},
		},
		"comments": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.commentType))),
			Description: "The comments made on this task.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				task := p.Source.(*domain.Task)
				return b.services.Comment.ListComments(p.Context, nil, &task.ID)
			},
		},
		"dependsOn": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.taskType))),
			Description: "The tasks this task depends on.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				task := p.Source.(*domain.Task)
				return b.services.Task.ListDependencies(p.Context, task.ID)
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Task).UpdatedAt, nil
			},
		},
	}
}

func (b *builder) commentFields() graphql.Fields {
	return graphql.Fields{
		"id": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Int),
			Description: "This comment's unique identifier.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Comment).ID, nil
			},
		},
		"content": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "This comment's content.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Comment).Content, nil
			},
		},
		"author": &graphql.Field{
			Type:        graphql.NewNonNull(b.userType),
			Description: "The user that made this comment.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				comment := p.Source.(*domain.Comment)
				return b.services.User.GetUser(p.Context, comment.AuthorID)
			},
		},
		"taskId": &graphql.Field{
			Type:        graphql.Int,
			Description: "The task this comment was made on, if any.",
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Comment).TaskID, nil
			},
		},
		"createdAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Comment).CreatedAt, nil
			},
		},
		"updatedAt": &graphql.Field{
			Type: graphql.NewNonNull(graphql.DateTime),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Comment).UpdatedAt, nil
			},
		},
	}
}

// authorized wraps a resolver with the field policy check. On denial the
// field resolves to an error; the execution engine records it against
// the field path and keeps resolving siblings.
func (b *builder) authorized(entity, field string, resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		viewer := domain.ViewerFromContext(p.Context)
		if !b.gate.Allowed(viewer.Roles, entity, field) {
			return nil, fmt.Errorf("not authorized to read %s.%s", entity, field)
		}
		return resolve(p)
	}
}
