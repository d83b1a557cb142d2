// Package domain contains the core business entities of the gift registry:
// users, the wishes they publish, the wishlists that group those wishes and
// the offers pledged toward them. It also hosts the validation gate that every
// entity candidate passes through before it is persisted.
package domain
