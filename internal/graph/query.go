package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/kwhite/taskboard/internal/domain"
)

func (b *builder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:        b.userType,
				Description: "The currently authenticated user, or null for anonymous callers.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					viewer := domain.ViewerFromContext(p.Context)
					if viewer.IsAnonymous() {
						return nil, nil
					}
					return b.services.User.GetUser(p.Context, viewer.UserID)
				},
			},
			"user": &graphql.Field{
				Type:        b.userType,
				Description: "Look up a user by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := parseUserID(p.Args["id"])
					if err != nil {
						return nil, err
					}
					return b.services.User.GetUser(p.Context, id)
				},
			},
			"users": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.userType))),
				Description: "All registered users.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.User.ListUsers(p.Context)
				},
			},
			"task": &graphql.Field{
				Type:        b.taskType,
				Description: "Look up a task by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Task.GetTask(p.Context, p.Args["id"].(int))
				},
			},
			"tasks": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.taskType))),
				Description: "All tasks, optionally filtered by owner.",
				Args: graphql.FieldConfigArgument{
					"ownerId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var ownerID *uuid.UUID
					if raw, ok := p.Args["ownerId"]; ok {
						id, err := parseUserID(raw)
						if err != nil {
							return nil, err
						}
						ownerID = &id
					}
					return b.services.Task.ListTasks(p.Context, ownerID)
				},
			},
			"comment": &graphql.Field{
				Type:        b.commentType,
				Description: "Look up a comment by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return b.services.Comment.GetComment(p.Context, p.Args["id"].(int))
				},
			},
			"comments": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.commentType))),
				Description: "All comments, optionally filtered by author or task.",
				Args: graphql.FieldConfigArgument{
					"authorId": &graphql.ArgumentConfig{Type: graphql.ID},
					"taskId":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var authorID *uuid.UUID
					if raw, ok := p.Args["authorId"]; ok {
						id, err := parseUserID(raw)
						if err != nil {
							return nil, err
						}
						authorID = &id
					}
					var taskID *int
					if raw, ok := p.Args["taskId"]; ok {
						id := raw.(int)
						taskID = &id
					}
					return b.services.Comment.ListComments(p.Context, authorID, taskID)
				},
			},
		},
	})
}
